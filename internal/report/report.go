// Package report renders ingestion results as CSV summaries or indented
// JSON. The CSV form is one row per processed document and is what batch
// runs write; JSON carries the full per-document trace for audit display.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"yapifin/cek-ocr/internal/currencyutils"
	"yapifin/cek-ocr/internal/ingest"
	"yapifin/cek-ocr/internal/logging"
	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/store"
)

// Row is one CSV line summarizing a processed document.
type Row struct {
	FileName     string `csv:"file"`
	Source       string `csv:"source"`
	Confidence   string `csv:"confidence"`
	Amount       string `csv:"amount"`
	Currency     string `csv:"currency"`
	DueDate      string `csv:"due_date"`
	IssueDate    string `csv:"issue_date"`
	Issuer       string `csv:"issuer"`
	Recipient    string `csv:"recipient"`
	BankName     string `csv:"bank_name"`
	BankCode     string `csv:"bank_code"`
	BankBranch   string `csv:"bank_branch"`
	BankCity     string `csv:"bank_city"`
	BankAccount  string `csv:"bank_account"`
	IBAN         string `csv:"iban"`
	SerialNumber string `csv:"serial_number"`
	EndorsedBy   string `csv:"endorsed_by"`
	IssuePlace   string `csv:"issue_place"`
}

// NewRow converts a processed document into a CSV row, resolving the bank
// code through the directory when the bank name is known.
func NewRow(doc models.Document, banks *store.BankDirectory) Row {
	row := Row{
		FileName:     doc.FileName,
		Source:       doc.OCR.Source,
		Confidence:   fmt.Sprintf("%.2f", doc.OCR.Confidence),
		Currency:     doc.Fields.Currency,
		DueDate:      doc.Fields.DueDate,
		IssueDate:    doc.Fields.IssueDate,
		Issuer:       doc.Fields.Issuer,
		Recipient:    doc.Fields.Recipient,
		BankName:     doc.Fields.BankName,
		BankBranch:   doc.Fields.BankBranch,
		BankCity:     doc.Fields.BankCity,
		BankAccount:  doc.Fields.BankAccount,
		IBAN:         doc.Fields.IBAN,
		SerialNumber: doc.Fields.SerialNumber,
		EndorsedBy:   doc.Fields.EndorsedBy,
		IssuePlace:   doc.Fields.IssuePlace,
	}
	if doc.Fields.Amount != nil {
		row.Amount = currencyutils.FormatAmount(*doc.Fields.Amount, "")
	}
	if banks != nil {
		if entry, ok := banks.Lookup(doc.Fields.BankName); ok {
			row.BankCode = entry.EFTCode
		}
	}
	return row
}

// WriteCSV writes one row per document to the given file, creating parent
// directories as needed.
func WriteCSV(result *ingest.Result, banks *store.BankDirectory, outputFile string) error {
	log := logging.GetLogger().WithField("component", "report")

	rows := make([]Row, 0, len(result.Documents))
	for _, doc := range result.Documents {
		rows = append(rows, NewRow(doc, banks))
	}

	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(outputFile) // #nosec G304 -- CLI tool writes to a user-provided path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close output file",
				logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
		}
	}()

	if err := gocsv.Marshal(&rows, file); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	log.Info("Wrote CSV summary",
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// WriteJSON writes the full ingestion result, including per-document traces,
// as indented JSON.
func WriteJSON(w io.Writer, result *ingest.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
