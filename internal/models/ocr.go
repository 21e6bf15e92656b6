package models

// Source tags for recognized text, identifying which engine produced it.
const (
	SourcePDFText   = "pdf-text"
	SourceImageOCR  = "image-ocr"
	SourcePlainText = "plain-text"
)

// OCRResult is the payload handed over by a text-recognition engine: the
// recognized text, the engine's own confidence in it (0..1, 1 for direct
// text reads) and a source tag. The field extractor consumes only the text;
// confidence and source travel along for audit display.
type OCRResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Document is the per-file result of the ingestion workflow: the recognized
// text together with the fields extracted from it and the raw-match trace.
type Document struct {
	FileName    string       `json:"fileName"`
	FilePath    string       `json:"filePath"`
	ContentType string       `json:"contentType"`
	OCR         OCRResult    `json:"ocr"`
	Fields      ParsedFields `json:"parsedFields"`
	Trace       MatchTrace   `json:"parserMatches"`
}
