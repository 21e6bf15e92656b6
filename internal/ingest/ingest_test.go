package ingest

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/ocr"
	"yapifin/cek-ocr/internal/parsererror"
)

// pathExtractor returns a canned result per file path, so one engine can
// serve different texts to different files in a single test run.
type pathExtractor struct {
	results map[string]models.OCRResult
}

func (p *pathExtractor) ExtractText(path string) (models.OCRResult, error) {
	result, ok := p.results[path]
	if !ok {
		return models.OCRResult{}, errors.New("unexpected path: " + path)
	}
	return result, nil
}

func plainResult(text string) models.OCRResult {
	return models.OCRResult{Text: text, Confidence: 1, Source: models.SourcePlainText}
}

func TestProcessFilesAggregatesFirstNonEmptyValue(t *testing.T) {
	dispatcher := &ocr.Dispatcher{
		Plain: &pathExtractor{results: map[string]models.OCRResult{
			"front.txt": plainResult("VADE: 15.03.2025"),
			"back.txt":  plainResult("VADE: 01.01.2030\nTUTAR: 500 TL"),
		}},
		PDF:   &ocr.MockExtractor{Err: errors.New("unused")},
		Image: &ocr.MockExtractor{Err: errors.New("unused")},
	}

	result, err := NewProcessor(dispatcher).ProcessFiles([]string{"front.txt", "back.txt"})
	require.NoError(t, err)
	require.Len(t, result.Documents, 2)

	// Per-document fields reflect each file on its own.
	assert.Equal(t, "2025-03-15", result.Documents[0].Fields.DueDate)
	assert.Equal(t, "2030-01-01", result.Documents[1].Fields.DueDate)
	assert.Equal(t, "front.txt", result.Documents[0].FileName)
	assert.Equal(t, "text/plain", result.Documents[0].ContentType)

	// The aggregate takes the first non-empty value per field, in file order.
	assert.Equal(t, "2025-03-15", result.Aggregated.DueDate)
	require.NotNil(t, result.Aggregated.Amount)
	assert.True(t, result.Aggregated.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "TRY", result.Aggregated.Currency)
}

func TestProcessFilesFallsBackToImageOCR(t *testing.T) {
	dispatcher := &ocr.Dispatcher{
		PDF: &ocr.MockExtractor{Err: errors.New("encrypted pdf")},
		Image: &ocr.MockExtractor{Result: models.OCRResult{
			Text:       "TUTAR: 500 TL",
			Confidence: 0.8,
			Source:     models.SourceImageOCR,
		}},
	}

	result, err := NewProcessor(dispatcher).ProcessFiles([]string{"scan.pdf"})
	require.NoError(t, err)
	require.Len(t, result.Documents, 1)

	doc := result.Documents[0]
	assert.Equal(t, models.SourceImageOCR, doc.OCR.Source)
	require.NotNil(t, doc.Fields.Amount)
	assert.True(t, doc.Fields.Amount.Equal(decimal.NewFromInt(500)))
}

func TestProcessFilesDegradesToEmptyTextOnTotalFailure(t *testing.T) {
	dispatcher := &ocr.Dispatcher{
		PDF:   &ocr.MockExtractor{Err: errors.New("unreadable")},
		Image: &ocr.MockExtractor{Err: errors.New("tesseract missing")},
	}

	result, err := NewProcessor(dispatcher).ProcessFiles([]string{"scan.pdf"})
	require.NoError(t, err, "engine failures must not abort the run")
	require.Len(t, result.Documents, 1)

	doc := result.Documents[0]
	assert.Empty(t, doc.OCR.Text)
	assert.Zero(t, doc.OCR.Confidence)
	assert.True(t, doc.Fields.IsEmpty())
	assert.True(t, result.Aggregated.IsEmpty())
}

func TestProcessFilesSkipsUnsupportedFiles(t *testing.T) {
	dispatcher := &ocr.Dispatcher{
		Plain: &ocr.MockExtractor{Result: plainResult("VADE: 15.03.2025")},
		Image: &ocr.MockExtractor{Err: errors.New("unused")},
	}

	result, err := NewProcessor(dispatcher).ProcessFiles([]string{"notes.txt", "cheque.docx"})
	require.NoError(t, err)

	assert.Len(t, result.Documents, 1)
	assert.Equal(t, []string{"cheque.docx"}, result.Skipped)
}

func TestProcessFilesNoPaths(t *testing.T) {
	_, err := NewProcessor(&ocr.Dispatcher{}).ProcessFiles(nil)

	var verr *parsererror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestProcessFilesNothingUsable(t *testing.T) {
	_, err := NewProcessor(&ocr.Dispatcher{}).ProcessFiles([]string{"a.docx", "b.xlsx"})

	var verr *parsererror.ValidationError
	require.ErrorAs(t, err, &verr)
}
