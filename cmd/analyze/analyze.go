// Package analyze handles the per-instrument extraction command
package analyze

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"yapifin/cek-ocr/cmd/root"
	"yapifin/cek-ocr/internal/chequeparser"
	"yapifin/cek-ocr/internal/ingest"
	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/report"
)

var fromStdin bool

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Extract cheque fields from one or more files",
	Long: `Analyze one or more scans of a single instrument. Each file is run
through text recognition and field extraction; when several files are given
their fields are aggregated (first non-empty value per field wins, in
argument order), matching how multiple photos of one cheque are combined.

With --stdin, raw recognized text is read from standard input and analyzed
directly, skipping text recognition.

Example:
  cek-ocr analyze front.jpg back.jpg
  pdftotext cheque.pdf - | cek-ocr analyze --stdin`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read recognized text from stdin instead of files")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if fromStdin {
		analyzeStdin()
		return
	}
	if len(args) == 0 {
		root.Log.Fatal("At least one file is required (or use --stdin)")
	}

	processor := ingest.NewProcessor(root.NewDispatcher())
	result, err := processor.ProcessFiles(args)
	if err != nil {
		root.Log.Fatalf("Analysis failed: %v", err)
	}

	if err := writeResult(result); err != nil {
		root.Log.Fatalf("Failed to write output: %v", err)
	}
}

// analyzeStdin runs the pure extraction engine over text piped in, with no
// recognition step in front.
func analyzeStdin() {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		root.Log.Fatalf("Failed to read stdin: %v", err)
	}

	fields, trace := chequeparser.Analyze(string(raw))
	result := &ingest.Result{
		Documents: []models.Document{{
			FileName:    "stdin",
			ContentType: "text/plain",
			OCR: models.OCRResult{
				Text:       string(raw),
				Confidence: 1,
				Source:     models.SourcePlainText,
			},
			Fields: fields,
			Trace:  trace,
		}},
		Aggregated: fields,
	}

	if err := writeResult(result); err != nil {
		root.Log.Fatalf("Failed to write output: %v", err)
	}
}

func writeResult(result *ingest.Result) error {
	if root.OutputFormat() == "csv" {
		output := root.SharedFlags.Output
		if output == "" {
			output = "cheques.csv"
		}
		return report.WriteCSV(result, root.NewBankDirectory(), output)
	}

	if root.SharedFlags.Output != "" {
		file, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				root.Log.Warnf("Failed to close output file: %v", cerr)
			}
		}()
		return report.WriteJSON(file, result)
	}
	return report.WriteJSON(os.Stdout, result)
}
