package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedFieldsIsEmpty(t *testing.T) {
	assert.True(t, ParsedFields{}.IsEmpty())
	assert.False(t, ParsedFields{DueDate: "2025-03-15"}.IsEmpty())

	amount := decimal.NewFromInt(500)
	assert.False(t, ParsedFields{Amount: &amount}.IsEmpty())
}

func TestParsedFieldsMergeMissing(t *testing.T) {
	amount := decimal.NewFromInt(500)
	other := decimal.NewFromInt(999)

	first := ParsedFields{DueDate: "2025-03-15", BankName: "Akbank"}
	second := ParsedFields{
		Amount:   &other,
		Currency: "TRY",
		DueDate:  "2030-01-01",
		BankName: "Garanti Bankası",
		IBAN:     "TR330006100519786457841326",
	}

	merged := first.MergeMissing(second)

	// Present values are never overwritten, missing ones are filled.
	assert.Equal(t, "2025-03-15", merged.DueDate)
	assert.Equal(t, "Akbank", merged.BankName)
	assert.Equal(t, "TR330006100519786457841326", merged.IBAN)
	assert.Equal(t, "TRY", merged.Currency)
	require.NotNil(t, merged.Amount)
	assert.True(t, merged.Amount.Equal(other))

	// MergeMissing is value-based and leaves the receiver untouched.
	assert.Empty(t, first.IBAN)

	withAmount := ParsedFields{Amount: &amount}
	assert.True(t, withAmount.MergeMissing(second).Amount.Equal(amount))
}

func TestParsedFieldsJSONOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(ParsedFields{DueDate: "2025-03-15"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"dueDate":"2025-03-15"}`, string(raw))
}
