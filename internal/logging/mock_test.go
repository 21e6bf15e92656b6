package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: "k", Value: "v"})
	mock.Warn("careful")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
	assert.Equal(t, []Field{{Key: "k", Value: "v"}}, mock.Entries[0].Fields)
}

func TestMockLoggerWithErrorAndFields(t *testing.T) {
	mock := &MockLogger{}
	err := errors.New("boom")

	derived := mock.WithField("component", "test").WithError(err)
	derived.Error("failed", Field{Key: "extra", Value: 1})

	entries := derived.(*MockLogger).Entries
	require.Len(t, entries, 1)
	assert.Equal(t, err, entries[0].Error)
	assert.Equal(t, []Field{{Key: "component", Value: "test"}, {Key: "extra", Value: 1}}, entries[0].Fields)
}
