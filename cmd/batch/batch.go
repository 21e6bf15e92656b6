// Package batch handles directory-level processing
package batch

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"yapifin/cek-ocr/cmd/root"
	"yapifin/cek-ocr/internal/ingest"
	"yapifin/cek-ocr/internal/report"
)

var inputDir string

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every supported file in a directory",
	Long: `Process all cheque scans (images, PDFs, text dumps) in a directory and
write a CSV summary with one row per document. Files that fail recognition
contribute an empty row rather than aborting the run.

Example:
  cek-ocr batch -i scans/ -o cheques.csv`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "input", "i", "", "Input directory with cheque scans")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.WithField("input_dir", inputDir).Info("Batch command called")

	info, err := os.Stat(inputDir)
	if err != nil {
		root.Log.Fatalf("Failed to access input directory: %v", err)
	}
	if !info.IsDir() {
		root.Log.Fatalf("Input path is not a directory: %s", inputDir)
	}

	dispatcher := root.NewDispatcher()
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		root.Log.Fatalf("Failed to read input directory: %v", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())
		if dispatcher.Supported(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		root.Log.Fatalf("No supported files found in %s", inputDir)
	}

	processor := ingest.NewProcessor(dispatcher)
	result, err := processor.ProcessFiles(files)
	if err != nil {
		root.Log.Fatalf("Batch processing failed: %v", err)
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = filepath.Join(root.AppConfig.Output.Directory, "cheques.csv")
	}
	if err := report.WriteCSV(result, root.NewBankDirectory(), output); err != nil {
		root.Log.Fatalf("Failed to write CSV summary: %v", err)
	}

	root.Log.WithField("count", len(result.Documents)).Info("Batch processing completed")
}
