package ocr

import (
	"os"
	"strings"

	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/parsererror"
)

// PlainTextExtractor reads already-recognized text from a .txt file. Useful
// when OCR ran elsewhere (or for archived OCR dumps) and only field
// extraction is wanted.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a plain-text reader.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// ExtractText reads the file verbatim with full confidence.
func (e *PlainTextExtractor) ExtractText(path string) (models.OCRResult, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- CLI tool operates on user-provided file paths
	if err != nil {
		return models.OCRResult{}, &parsererror.ExtractionError{
			FilePath: path,
			Engine:   models.SourcePlainText,
			Err:      err,
		}
	}
	return models.OCRResult{
		Text:       strings.TrimSpace(string(raw)),
		Confidence: 1,
		Source:     models.SourcePlainText,
	}, nil
}
