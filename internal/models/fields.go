// Package models defines the data structures shared between the extraction
// engine, the ingestion workflow and the reporting layer.
package models

import (
	"github.com/shopspring/decimal"
)

// ParsedFields is the structured result of analyzing recognized cheque or
// promissory-note text. Every field is optional: an empty string (or nil
// amount) means "not found", never an empty value. The extraction engine
// invents no defaults beyond the documented currency and bank-name
// fallbacks.
type ParsedFields struct {
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	DueDate      string           `json:"dueDate,omitempty"`
	IssueDate    string           `json:"issueDate,omitempty"`
	Issuer       string           `json:"issuer,omitempty"`
	Recipient    string           `json:"recipient,omitempty"`
	BankName     string           `json:"bankName,omitempty"`
	BankBranch   string           `json:"bankBranch,omitempty"`
	BankCity     string           `json:"bankCity,omitempty"`
	BankAccount  string           `json:"bankAccount,omitempty"`
	IBAN         string           `json:"iban,omitempty"`
	SerialNumber string           `json:"serialNumber,omitempty"`
	EndorsedBy   string           `json:"endorsedBy,omitempty"`
	IssuePlace   string           `json:"issuePlace,omitempty"`
}

// IsEmpty reports whether no field at all was extracted.
func (f ParsedFields) IsEmpty() bool {
	return f == ParsedFields{}
}

// MergeMissing fills every unset field from other and returns the result.
// Used by the ingestion workflow to aggregate fields across multiple files
// for one instrument: the first non-empty value per field wins, in upload
// order.
func (f ParsedFields) MergeMissing(other ParsedFields) ParsedFields {
	if f.Amount == nil {
		f.Amount = other.Amount
	}
	if f.Currency == "" {
		f.Currency = other.Currency
	}
	if f.DueDate == "" {
		f.DueDate = other.DueDate
	}
	if f.IssueDate == "" {
		f.IssueDate = other.IssueDate
	}
	if f.Issuer == "" {
		f.Issuer = other.Issuer
	}
	if f.Recipient == "" {
		f.Recipient = other.Recipient
	}
	if f.BankName == "" {
		f.BankName = other.BankName
	}
	if f.BankBranch == "" {
		f.BankBranch = other.BankBranch
	}
	if f.BankCity == "" {
		f.BankCity = other.BankCity
	}
	if f.BankAccount == "" {
		f.BankAccount = other.BankAccount
	}
	if f.IBAN == "" {
		f.IBAN = other.IBAN
	}
	if f.SerialNumber == "" {
		f.SerialNumber = other.SerialNumber
	}
	if f.EndorsedBy == "" {
		f.EndorsedBy = other.EndorsedBy
	}
	if f.IssuePlace == "" {
		f.IssuePlace = other.IssuePlace
	}
	return f
}

// MatchTrace maps matcher names to the raw substring or line that produced
// each populated field, plus fallback markers (genericDate, amountFallback).
// It exists for audit and manual verification only and never drives any
// control-flow decision.
type MatchTrace map[string]string
