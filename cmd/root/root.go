// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"yapifin/cek-ocr/internal/config"
	"yapifin/cek-ocr/internal/logging"
	"yapifin/cek-ocr/internal/ocr"
	"yapifin/cek-ocr/internal/store"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Output string
	Format string
	Banks  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the loaded application configuration
	AppConfig *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cek-ocr",
		Short: "Extract structured fields from scanned Turkish cheques and promissory notes.",
		Long: `cek-ocr runs text recognition on cheque/senet scans (images, PDFs, or
plain-text OCR dumps) and extracts structured fields: amount, currency,
due and issue dates, parties, bank, branch, IBAN, account and serial
numbers. Results are printed as JSON or written as CSV summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cek-ocr!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			AppConfig = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetGlobalLogger(Log)
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: stdout for JSON)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json or csv (default from config)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Banks, "banks", "", "Bank directory YAML file for code enrichment")
}

// NewDispatcher builds the production extractor dispatcher from the loaded
// configuration.
func NewDispatcher() *ocr.Dispatcher {
	return ocr.NewDispatcher(AppConfig.OCR.TesseractPath, AppConfig.OCR.Languages)
}

// NewBankDirectory loads the bank directory configured via flag or config.
func NewBankDirectory() *store.BankDirectory {
	file := SharedFlags.Banks
	if file == "" {
		file = AppConfig.Banks.File
	}
	banks := store.NewBankDirectory(file)
	if err := banks.Load(); err != nil {
		Log.Warnf("Failed to load bank directory, continuing without enrichment: %v", err)
	}
	return banks
}

// OutputFormat resolves the effective output format.
func OutputFormat() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	return AppConfig.Output.Format
}
