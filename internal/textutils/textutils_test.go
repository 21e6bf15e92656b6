package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \t b\nc  "))
	assert.Equal(t, "", NormalizeWhitespace("   "))
	assert.Equal(t, "tek", NormalizeWhitespace("tek"))
}

func TestCompactWhitespace(t *testing.T) {
	assert.Equal(t, "TR330006", CompactWhitespace("TR33 0006"))
	assert.Equal(t, "1234567890", CompactWhitespace("1234 5678\n90"))
	assert.Equal(t, "", CompactWhitespace(" \t "))
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single token", "ANKARA", "Ankara"},
		{"multiple tokens", "MEHMET CAN", "Mehmet Can"},
		{"turkish dotted capitals", "ŞUBESİ", "Şubesi"},
		{"collapses internal runs", "KARŞIYAKA   ŞUBESİ", "Karşıyaka Şubesi"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TitleCase(tc.input))
		})
	}
}
