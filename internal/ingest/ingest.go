// Package ingest implements the document ingestion workflow around the
// extraction engine: run text recognition on each uploaded file, analyze the
// recognized text, and aggregate the extracted fields across all files for
// one instrument. Engine failures degrade to empty text with a warning so a
// batch never aborts on a single bad scan.
package ingest

import (
	"path/filepath"
	"strings"

	"yapifin/cek-ocr/internal/chequeparser"
	"yapifin/cek-ocr/internal/logging"
	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/ocr"
	"yapifin/cek-ocr/internal/parsererror"
)

// Result is the outcome of processing one instrument's files.
type Result struct {
	// Documents holds the per-file results in processing order.
	Documents []models.Document `json:"documents"`
	// Aggregated combines fields across all files: the first non-empty
	// value per field wins, in file order.
	Aggregated models.ParsedFields `json:"aggregatedFields"`
	// Skipped lists files no engine could handle.
	Skipped []string `json:"skipped,omitempty"`
}

// Processor runs the ingestion workflow.
type Processor struct {
	dispatcher *ocr.Dispatcher
	log        logging.Logger
}

// NewProcessor creates a Processor using the given extractor dispatcher.
func NewProcessor(dispatcher *ocr.Dispatcher) *Processor {
	return &Processor{
		dispatcher: dispatcher,
		log:        logging.GetLogger().WithField("component", "ingest"),
	}
}

// ProcessFiles runs recognition and extraction over the given files in
// order. At least one file is required, and at least one file must be of a
// supported type; beyond that, individual engine failures never abort the
// run — the affected file simply contributes an empty field set.
func (p *Processor) ProcessFiles(paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, &parsererror.ValidationError{Reason: "at least one file is required"}
	}

	result := &Result{}
	for _, path := range paths {
		extractor, err := p.dispatcher.ForFile(path)
		if err != nil {
			p.log.WithError(err).Warn("Skipping unsupported file",
				logging.Field{Key: logging.FieldFile, Value: path})
			result.Skipped = append(result.Skipped, path)
			continue
		}

		ocrResult := p.extractWithFallback(path, extractor)
		fields, trace := chequeparser.Analyze(ocrResult.Text)

		p.log.Info("Processed document",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: logging.FieldSource, Value: ocrResult.Source},
			logging.Field{Key: logging.FieldConfidence, Value: ocrResult.Confidence},
			logging.Field{Key: logging.FieldCount, Value: len(trace)})

		result.Documents = append(result.Documents, models.Document{
			FileName:    filepath.Base(path),
			FilePath:    path,
			ContentType: ocr.ContentTypeFor(path),
			OCR:         ocrResult,
			Fields:      fields,
			Trace:       trace,
		})
		result.Aggregated = result.Aggregated.MergeMissing(fields)
	}

	if len(result.Documents) == 0 {
		return nil, &parsererror.ValidationError{Reason: "no usable file was processed"}
	}
	return result, nil
}

// extractWithFallback runs the primary engine for the file and falls back to
// image OCR when the primary fails or recognizes nothing. When every engine
// fails the file degrades to empty text; the extractor downstream turns that
// into an all-absent field set rather than an error.
func (p *Processor) extractWithFallback(path string, primary ocr.TextExtractor) models.OCRResult {
	result, err := primary.ExtractText(path)
	if err == nil && strings.TrimSpace(result.Text) != "" {
		return result
	}
	if err != nil {
		p.log.WithError(err).Warn("Primary text recognition failed",
			logging.Field{Key: logging.FieldFile, Value: path})
	}

	if primary != p.dispatcher.Image {
		fallback, ferr := p.dispatcher.Image.ExtractText(path)
		if ferr == nil && strings.TrimSpace(fallback.Text) != "" {
			p.log.Info("Recovered text via image OCR fallback",
				logging.Field{Key: logging.FieldFile, Value: path})
			return fallback
		}
		if ferr != nil {
			p.log.WithError(ferr).Warn("Image OCR fallback failed",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}

	source := result.Source
	if source == "" {
		source = models.SourceImageOCR
	}
	p.log.Warn("No text recognized, continuing with empty text",
		logging.Field{Key: logging.FieldFile, Value: path})
	return models.OCRResult{Text: "", Confidence: 0, Source: source}
}
