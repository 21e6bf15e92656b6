// Package ocr provides the text-recognition collaborators that turn uploaded
// cheque files into raw text for the extraction engine. Three engines are
// supported: direct PDF text extraction, tesseract image OCR, and plain-text
// reads. The extraction engine downstream consumes only the text; the
// confidence and source tag travel along for audit display.
package ocr

import (
	"path/filepath"
	"strings"

	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/parsererror"
)

// TextExtractor recognizes text from a file on disk.
type TextExtractor interface {
	// ExtractText returns the recognized text with a confidence score and
	// source tag, or an error when the engine itself fails (unreadable
	// file, missing binary). Engine failures are the caller's concern; the
	// field extractor downstream never sees them.
	ExtractText(path string) (models.OCRResult, error)
}

// Dispatcher picks a text extractor per file based on its extension.
type Dispatcher struct {
	PDF   TextExtractor
	Image TextExtractor
	Plain TextExtractor
}

// NewDispatcher builds a dispatcher with the production engines.
// tesseractBin and languages configure the image OCR engine.
func NewDispatcher(tesseractBin, languages string) *Dispatcher {
	return &Dispatcher{
		PDF:   NewPDFTextExtractor(),
		Image: NewTesseractExtractor(tesseractBin, languages),
		Plain: NewPlainTextExtractor(),
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

// ForFile returns the extractor responsible for the given file, or an
// UnsupportedFormatError for file types no engine handles.
func (d *Dispatcher) ForFile(path string) (TextExtractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return d.PDF, nil
	case ext == ".txt":
		return d.Plain, nil
	case imageExtensions[ext]:
		return d.Image, nil
	default:
		return nil, &parsererror.UnsupportedFormatError{FilePath: path, Extension: ext}
	}
}

// Supported reports whether any engine handles the given file name.
func (d *Dispatcher) Supported(path string) bool {
	_, err := d.ForFile(path)
	return err == nil
}

// ContentTypeFor maps a file name to a MIME content type for the document
// record. Unknown extensions fall back to application/octet-stream.
func ContentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".webp":
		return "image/webp"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// MockExtractor implements TextExtractor for testing with canned results.
type MockExtractor struct {
	Result models.OCRResult
	Err    error
}

// ExtractText returns the predefined mock result or error.
func (m *MockExtractor) ExtractText(path string) (models.OCRResult, error) {
	if m.Err != nil {
		return models.OCRResult{}, m.Err
	}
	return m.Result, nil
}
