package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDateCandidateNumeric(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"dots", "15.03.2025", "2025-03-15"},
		{"slashes", "15/03/2025", "2025-03-15"},
		{"dashes", "15-03-2025", "2025-03-15"},
		{"single-digit day and month", "7.4.2025", "2025-04-07"},
		{"two-digit year", "15.03.25", "2025-03-15"},
		{"embedded in a label line", "VADE: 15.03.2025", "2025-03-15"},
		{"noise around the date", "VADE* 15.03.2025 #", "2025-03-15"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDateCandidate(tc.input))
		})
	}
}

func TestParseDateCandidateLongForm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"mart", "7 MART 2025", "2025-03-07"},
		{"ocak", "1 OCAK 2026", "2026-01-01"},
		{"aralik", "31 ARALIK 2024", "2024-12-31"},
		{"lowercase month", "7 mart 2025", "2025-03-07"},
		{"diacritics dropped by recognition", "5 SUBAT 2025", "2025-02-05"},
		{"dotted month kept", "5 ŞUBAT 2025", "2025-02-05"},
		{"agustos without breve", "9 AGUSTOS 2025", "2025-08-09"},
		{"two-digit year", "7 MART 25", "2025-03-07"},
		{"label prefix", "KEŞİDE TARİHİ 7 MART 2025", "2025-03-07"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDateCandidate(tc.input))
		})
	}
}

func TestParseDateCandidateNumericTakesPriority(t *testing.T) {
	assert.Equal(t, "2025-03-15", ParseDateCandidate("15.03.2025 veya 7 MART 2025"))
}

func TestParseDateCandidateNoDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prose", "Merhaba dünya"},
		{"bare number", "12345"},
		{"unknown month name", "7 FOO 2025"},
		{"comma separators", "15,03,2025"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, ParseDateCandidate(tc.input))
		})
	}
}
