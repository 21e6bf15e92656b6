// Package store provides the YAML-backed directory of known Turkish banks.
// The directory enriches reports with EFT/SWIFT codes for extracted bank
// names. It is consulted only after extraction and never feeds back into
// the matcher tables, so the extraction engine stays a pure function of its
// input text.
package store

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"yapifin/cek-ocr/internal/logging"
)

// BankEntry describes one bank in the directory.
type BankEntry struct {
	Name    string `yaml:"name"`
	EFTCode string `yaml:"eft_code"`
	SWIFT   string `yaml:"swift,omitempty"`
}

// defaultBanks covers the banks most commonly seen on Turkish cheques.
// A banks.yaml file in a standard config location replaces this list.
var defaultBanks = []BankEntry{
	{Name: "Ziraat Bankası", EFTCode: "0010", SWIFT: "TCZBTR2A"},
	{Name: "Halkbank", EFTCode: "0012", SWIFT: "TRHBTR2A"},
	{Name: "Vakıfbank", EFTCode: "0015", SWIFT: "TVBATR2A"},
	{Name: "Türk Ekonomi Bankası", EFTCode: "0032", SWIFT: "TEBUTRIS"},
	{Name: "Akbank", EFTCode: "0046", SWIFT: "AKBKTRIS"},
	{Name: "Garanti Bankası", EFTCode: "0062", SWIFT: "TGBATRIS"},
	{Name: "İş Bankası", EFTCode: "0064", SWIFT: "ISBKTRIS"},
	{Name: "Yapı Kredi Bankası", EFTCode: "0067", SWIFT: "YAPITRIS"},
	{Name: "QNB Finansbank", EFTCode: "0111", SWIFT: "FNNBTRIS"},
	{Name: "Denizbank", EFTCode: "0134", SWIFT: "DENITRIS"},
}

// BankDirectory manages loading and looking up bank entries.
type BankDirectory struct {
	FilePath string

	banks []BankEntry
	log   logging.Logger
}

// NewBankDirectory creates a directory backed by the given YAML file. An
// empty path (or a missing file) falls back to the built-in defaults.
func NewBankDirectory(filePath string) *BankDirectory {
	return &BankDirectory{
		FilePath: filePath,
		log:      logging.GetLogger().WithField("component", "bank-directory"),
	}
}

// FindConfigFile looks for the directory file in standard locations:
// the path itself, ./config/ and ~/.cek-ocr/.
func (s *BankDirectory) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(home, ".cek-ocr", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads the bank list from the YAML file, falling back to the built-in
// defaults when no file is configured or found.
func (s *BankDirectory) Load() error {
	if s.FilePath == "" {
		s.banks = defaultBanks
		return nil
	}

	path, err := s.FindConfigFile(s.FilePath)
	if err != nil {
		s.log.Info("No bank directory file found, using built-in defaults",
			logging.Field{Key: logging.FieldFile, Value: s.FilePath})
		s.banks = defaultBanks
		return nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from local configuration
	if err != nil {
		return err
	}

	var banks []BankEntry
	if err := yaml.Unmarshal(raw, &banks); err != nil {
		return err
	}
	s.banks = banks
	s.log.Debug("Loaded bank directory",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(banks)})
	return nil
}

// Save writes the current bank list back to the YAML file.
func (s *BankDirectory) Save() error {
	if s.FilePath == "" {
		return nil
	}
	raw, err := yaml.Marshal(s.banks)
	if err != nil {
		return err
	}
	return os.WriteFile(s.FilePath, raw, 0600)
}

// Lookup resolves an extracted bank name to a directory entry. Extracted
// names are title-cased free text ("Türkiye İş Bankası A.ş.", or a
// synthesized "<Branch> Bankası"), so matching is a case-insensitive
// substring check in both directions.
func (s *BankDirectory) Lookup(bankName string) (BankEntry, bool) {
	if bankName == "" {
		return BankEntry{}, false
	}
	needle := strings.ToUpper(bankName)
	for _, entry := range s.banks {
		candidate := strings.ToUpper(entry.Name)
		if strings.Contains(needle, candidate) || strings.Contains(candidate, needle) {
			return entry, true
		}
	}
	return BankEntry{}, false
}

// Entries returns the loaded bank list.
func (s *BankDirectory) Entries() []BankEntry {
	return s.banks
}
