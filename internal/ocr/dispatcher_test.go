package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yapifin/cek-ocr/internal/parsererror"
)

func newTestDispatcher() *Dispatcher {
	return &Dispatcher{
		PDF:   &MockExtractor{},
		Image: &MockExtractor{},
		Plain: &MockExtractor{},
	}
}

func TestDispatcherForFile(t *testing.T) {
	d := newTestDispatcher()

	tests := []struct {
		path     string
		expected TextExtractor
	}{
		{"cheque.pdf", d.PDF},
		{"CHEQUE.PDF", d.PDF},
		{"dump.txt", d.Plain},
		{"scan.jpg", d.Image},
		{"scan.jpeg", d.Image},
		{"scan.png", d.Image},
		{"scan.tiff", d.Image},
		{"scan.webp", d.Image},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			extractor, err := d.ForFile(tc.path)
			require.NoError(t, err)
			assert.Same(t, tc.expected, extractor)
		})
	}
}

func TestDispatcherForFileUnsupported(t *testing.T) {
	d := newTestDispatcher()

	_, err := d.ForFile("cheque.docx")

	var uerr *parsererror.UnsupportedFormatError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ".docx", uerr.Extension)
	assert.Equal(t, "cheque.docx", uerr.FilePath)
}

func TestDispatcherSupported(t *testing.T) {
	d := newTestDispatcher()

	assert.True(t, d.Supported("a.pdf"))
	assert.True(t, d.Supported("a.txt"))
	assert.True(t, d.Supported("a.bmp"))
	assert.False(t, d.Supported("a.docx"))
	assert.False(t, d.Supported("noextension"))
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.pdf", "application/pdf"},
		{"a.png", "image/png"},
		{"a.jpg", "image/jpeg"},
		{"a.JPEG", "image/jpeg"},
		{"a.tif", "image/tiff"},
		{"a.txt", "text/plain"},
		{"a.bin", "application/octet-stream"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, ContentTypeFor(tc.path))
		})
	}
}
