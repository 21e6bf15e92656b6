// Package parsererror defines typed errors for the text-recognition boundary.
// The field extractor itself never fails; these errors belong to the OCR
// engines and the file ingestion workflow around it.
package parsererror

import "fmt"

// ExtractionError represents a failure of a text-recognition engine while
// processing a file (unreadable PDF, tesseract exit code, IO failure).
type ExtractionError struct {
	FilePath string
	Engine   string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: failed to extract text from '%s': %v", e.Engine, e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UnsupportedFormatError represents a file whose type no extractor handles.
type UnsupportedFormatError struct {
	FilePath  string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format '%s' for '%s'", e.Extension, e.FilePath)
}

// ValidationError represents a caller-side precondition failure, such as an
// ingestion request without any usable file.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}
