package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsBuilderFirstMatchWins(t *testing.T) {
	b := NewFieldsBuilder()

	assert.True(t, b.SetDueDate("2025-03-15"))
	assert.False(t, b.SetDueDate("2030-01-01"), "a set field is never overwritten")
	assert.Equal(t, "2025-03-15", b.Fields().DueDate)
}

func TestFieldsBuilderRejectsEmptyValues(t *testing.T) {
	b := NewFieldsBuilder()

	assert.False(t, b.SetBankName(""))
	assert.False(t, b.HasBankName(), "an empty match must not block a later fallback")

	assert.True(t, b.SetBankName("Akbank Bankası"))
	assert.True(t, b.HasBankName())
}

func TestFieldsBuilderAmountPairsWithCurrency(t *testing.T) {
	b := NewFieldsBuilder()
	assert.False(t, b.HasAmount())

	assert.True(t, b.SetAmount(decimal.NewFromInt(500), "TRY"))
	assert.True(t, b.HasAmount())
	assert.False(t, b.SetAmount(decimal.NewFromInt(999), "USD"))

	fields := b.Fields()
	require.NotNil(t, fields.Amount)
	assert.True(t, fields.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "TRY", fields.Currency)
}

func TestFieldsBuilderHasFlags(t *testing.T) {
	b := NewFieldsBuilder()
	assert.False(t, b.HasDueDate())
	assert.False(t, b.HasIssueDate())

	b.SetDueDate("2025-03-15")
	b.SetIssueDate("2025-01-01")
	assert.True(t, b.HasDueDate())
	assert.True(t, b.HasIssueDate())
}
