package models

import "github.com/shopspring/decimal"

// FieldsBuilder accumulates extracted fields with first-match-wins
// semantics: every setter is a no-op once its field holds a value, and
// reports whether it actually set anything so the caller can record the
// matching line in the trace only for the winning match.
//
// Within a single extraction pass this guarantees that a value populated by
// an earlier, more specific match is never overwritten by a later, less
// specific one.
type FieldsBuilder struct {
	fields ParsedFields
}

// NewFieldsBuilder returns an empty builder.
func NewFieldsBuilder() *FieldsBuilder {
	return &FieldsBuilder{}
}

// Fields returns the accumulated field set.
func (b *FieldsBuilder) Fields() ParsedFields {
	return b.fields
}

// SetAmount sets the amount and its currency together; the two always travel
// as a pair since the currency is inferred from the amount's source line.
func (b *FieldsBuilder) SetAmount(amount decimal.Decimal, currency string) bool {
	if b.fields.Amount != nil {
		return false
	}
	b.fields.Amount = &amount
	b.fields.Currency = currency
	return true
}

// HasAmount reports whether an amount has been set.
func (b *FieldsBuilder) HasAmount() bool {
	return b.fields.Amount != nil
}

func (b *FieldsBuilder) SetDueDate(v string) bool   { return setIfUnset(&b.fields.DueDate, v) }
func (b *FieldsBuilder) SetIssueDate(v string) bool { return setIfUnset(&b.fields.IssueDate, v) }
func (b *FieldsBuilder) SetIssuer(v string) bool    { return setIfUnset(&b.fields.Issuer, v) }
func (b *FieldsBuilder) SetRecipient(v string) bool { return setIfUnset(&b.fields.Recipient, v) }
func (b *FieldsBuilder) SetBankName(v string) bool  { return setIfUnset(&b.fields.BankName, v) }
func (b *FieldsBuilder) SetBankBranch(v string) bool {
	return setIfUnset(&b.fields.BankBranch, v)
}
func (b *FieldsBuilder) SetBankCity(v string) bool { return setIfUnset(&b.fields.BankCity, v) }
func (b *FieldsBuilder) SetBankAccount(v string) bool {
	return setIfUnset(&b.fields.BankAccount, v)
}
func (b *FieldsBuilder) SetIBAN(v string) bool { return setIfUnset(&b.fields.IBAN, v) }
func (b *FieldsBuilder) SetSerialNumber(v string) bool {
	return setIfUnset(&b.fields.SerialNumber, v)
}
func (b *FieldsBuilder) SetEndorsedBy(v string) bool {
	return setIfUnset(&b.fields.EndorsedBy, v)
}
func (b *FieldsBuilder) SetIssuePlace(v string) bool {
	return setIfUnset(&b.fields.IssuePlace, v)
}

// HasDueDate reports whether a due date has been set.
func (b *FieldsBuilder) HasDueDate() bool { return b.fields.DueDate != "" }

// HasIssueDate reports whether an issue date has been set.
func (b *FieldsBuilder) HasIssueDate() bool { return b.fields.IssueDate != "" }

// HasBankName reports whether a bank name has been set.
func (b *FieldsBuilder) HasBankName() bool { return b.fields.BankName != "" }

func setIfUnset(target *string, value string) bool {
	if *target != "" || value == "" {
		return false
	}
	*target = value
	return true
}
