package ocr

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	"yapifin/cek-ocr/internal/logging"
	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/parsererror"
)

// DefaultLanguages is the tesseract language set for Turkish instruments
// with English financial vocabulary mixed in.
const DefaultLanguages = "tur+eng"

// TesseractExtractor recognizes text from cheque photographs and scans by
// shelling out to the tesseract command-line tool.
type TesseractExtractor struct {
	binary    string
	languages string
	log       logging.Logger
}

// NewTesseractExtractor creates an image OCR extractor. Empty arguments fall
// back to the "tesseract" binary on PATH and the default language set.
func NewTesseractExtractor(binary, languages string) *TesseractExtractor {
	if binary == "" {
		binary = "tesseract"
	}
	if languages == "" {
		languages = DefaultLanguages
	}
	return &TesseractExtractor{
		binary:    binary,
		languages: languages,
		log:       logging.GetLogger().WithField("component", "tesseract"),
	}
}

// ExtractText runs tesseract on the image and returns the recognized text.
// The aggregate confidence is the mean word confidence reported by the TSV
// output; when the TSV pass fails the text still stands with confidence 0.
func (e *TesseractExtractor) ExtractText(path string) (models.OCRResult, error) {
	text, err := e.run(path, "txt")
	if err != nil {
		return models.OCRResult{}, &parsererror.ExtractionError{
			FilePath: path,
			Engine:   models.SourceImageOCR,
			Err:      err,
		}
	}

	confidence := 0.0
	if tsv, err := e.run(path, "tsv"); err == nil {
		confidence = meanWordConfidence(tsv)
	} else {
		e.log.WithError(err).Debug("Tesseract TSV pass failed, confidence unknown",
			logging.Field{Key: logging.FieldFile, Value: path})
	}

	e.log.Debug("Recognized image text",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldConfidence, Value: confidence})

	return models.OCRResult{
		Text:       strings.TrimSpace(text),
		Confidence: confidence,
		Source:     models.SourceImageOCR,
	}, nil
}

// run invokes tesseract writing to stdout in the given output format.
func (e *TesseractExtractor) run(path, format string) (string, error) {
	args := []string{path, "stdout", "-l", e.languages}
	if format != "txt" {
		args = append(args, format)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(e.binary, args...) // #nosec G204 -- binary and languages come from local configuration
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.log.WithError(err).Error("Tesseract invocation failed",
			logging.Field{Key: logging.FieldFile, Value: path},
			logging.Field{Key: "stderr", Value: stderr.String()})
		return "", err
	}
	return stdout.String(), nil
}

// meanWordConfidence averages the per-word confidence column of tesseract's
// TSV output, normalized to 0..1. Rows with conf -1 are layout entries, not
// recognized words, and are skipped.
func meanWordConfidence(tsv string) float64 {
	lines := strings.Split(tsv, "\n")
	var sum float64
	var count int
	for i, line := range lines {
		if i == 0 {
			continue // header row
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 12 {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		if strings.TrimSpace(cols[11]) == "" {
			continue
		}
		sum += conf
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count) / 100
}
