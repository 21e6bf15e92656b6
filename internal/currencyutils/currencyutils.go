// Package currencyutils provides amount parsing and formatting for Turkish
// financial instruments.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency codes produced by extraction. TRY is the default when an amount
// is found without an explicit dollar marker.
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
)

// amountPattern matches a Turkish-formatted numeric literal anchored to a
// lira marker (₺, TL or TRY). The trailing marker is mandatory; a leading
// one is also consumed so that "TL 1.500,00 TL" does not double-match.
var amountPattern = regexp.MustCompile(`(?i)(?:₺|TL|TRY)?\s*([\d.,]{2,})\s*(?:₺|TL|TRY)`)

// ParseAmountCandidate extracts the first currency-marked amount from the
// input. The matched literal uses "." as thousands separator and "," as
// decimal separator; both are normalized before parsing. Returns false when
// no amount is present, when the literal does not survive normalization, or
// when it parses to zero — a zero cheque amount is noise, not a value.
func ParseAmountCandidate(input string) (decimal.Decimal, bool) {
	match := amountPattern.FindStringSubmatch(input)
	if match == nil {
		return decimal.Zero, false
	}

	raw := strings.ReplaceAll(match[1], ".", "")
	raw = strings.ReplaceAll(raw, ",", ".")

	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsZero() {
		return decimal.Zero, false
	}
	return amount, true
}

// DetectCurrency returns USD when the source text carries a dollar sign,
// TRY otherwise. Cheques drawn in lira usually omit any marker beyond "TL".
func DetectCurrency(source string) string {
	if strings.Contains(source, "$") {
		return CurrencyUSD
	}
	return CurrencyTRY
}

// FormatAmount renders an amount for report output with two decimal places,
// e.g. "12500.75 TRY".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}
