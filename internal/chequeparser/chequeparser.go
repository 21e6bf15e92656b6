// Package chequeparser extracts structured fields from the recognized text
// of Turkish bank cheques and promissory notes (senet).
//
// The input is whatever an upstream OCR or PDF-text engine recovered from a
// photographed or scanned instrument; it may be noisy, partial, or not a
// financial document at all. Extraction is heuristic and best-effort: a
// battery of keyword-gated patterns is applied first line by line for the
// anchored fields (due date, issue date, amount), then once against the
// uppercased whole text for the label-prefixed fields (bank, IBAN, account,
// serial, branch, issue place, endorsement, parties). Matching is
// first-match-wins per field in document order. Analyze never fails: text
// without any recognizable structure yields an empty field set.
package chequeparser

import (
	"regexp"
	"strings"

	"yapifin/cek-ocr/internal/currencyutils"
	"yapifin/cek-ocr/internal/dateutils"
	"yapifin/cek-ocr/internal/models"
	"yapifin/cek-ocr/internal/textutils"
)

// Pattern table, compiled once at package initialization and shared
// read-only between concurrent extractions. The character classes carry
// both dotted and dotless I because Go's case folding (like Unicode simple
// folding) never folds İ/ı with the ASCII pair.
var (
	bankLinePattern   = regexp.MustCompile(`(?i)BANKAS[İI]`)
	branchSuffix      = regexp.MustCompile(`(?i)ŞUBE.*`)
	branchSuffixASCII = regexp.MustCompile(`(?i)SUBE.*`)

	ibanPattern    = regexp.MustCompile(`(?i)(TR[\s\d]{10,36})`)
	accountPattern = regexp.MustCompile(`(?i)HESAP\s*NO[:\s-]*([\d\s-]+)`)
	serialPattern  = regexp.MustCompile(`(?i)SER[İI]?(?:\s*NO)?[:\s-]*([\w-]+)`)
	branchPattern  = regexp.MustCompile(`(?i)(?:ŞUBE|SUBE|BRANCH|ŞB\.)\s*[:\-]?\s*([\wÇĞİÖŞÜ\s-]+)`)

	dueDateGate   = regexp.MustCompile(`(?i)VADE|ÖDEME|DUE`)
	issueDateGate = regexp.MustCompile(`(?i)KEŞ[İI]DE|ISSUE`)
)

// freeTextMatchers are the label-prefixed party and place fields, evaluated
// in a fixed priority order against the uppercased whole text. The first
// match in document order wins; the captured span runs to the next field
// boundary (any character outside the Turkish letter class).
var freeTextMatchers = []struct {
	name    string
	pattern *regexp.Regexp
	set     func(*models.FieldsBuilder, string) bool
}{
	{
		name:    "issuePlace",
		pattern: regexp.MustCompile(`(?i)(?:KEŞ[İI]DE\s*YER[İI]|KESIDE\s*YER[İI]|ISSUE\s*PLACE)[:\s-]*([\wÇĞİÖŞÜ\s-]+)`),
		set:     (*models.FieldsBuilder).SetIssuePlace,
	},
	{
		name:    "endorsedBy",
		pattern: regexp.MustCompile(`(?i)(?:C[İI]RO|CÜRO|ENDORSE)[:\s-]*([\wÇĞİÖŞÜ\s-]+)`),
		set:     (*models.FieldsBuilder).SetEndorsedBy,
	},
	{
		name:    "recipient",
		pattern: regexp.MustCompile(`(?i)(?:LEHDAR|ALICI|PAYEE)[:\s-]*([\wÇĞİÖŞÜ\s-]+)`),
		set:     (*models.FieldsBuilder).SetRecipient,
	},
	{
		name:    "issuer",
		pattern: regexp.MustCompile(`(?i)(?:KEŞ[İI]DECI?|ÇEK\s*SAH[İI]B[İI]|ISSUER)[:\s-]*([\wÇĞİÖŞÜ\s-]+)`),
		set:     (*models.FieldsBuilder).SetIssuer,
	},
}

// Analyze extracts structured fields from recognized cheque text and returns
// them together with a trace of the raw substrings that produced each field.
// It is a pure function of its input: no I/O, no shared mutable state, safe
// for concurrent use. It always succeeds; the worst case is an empty result.
func Analyze(text string) (models.ParsedFields, models.MatchTrace) {
	builder := models.NewFieldsBuilder()
	trace := models.MatchTrace{}

	lines := splitLines(text)
	upper := strings.ToUpper(text)

	// Drawee bank: the first line naming a "... BANKASI", with any branch
	// suffix stripped. The line is traced even when stripping leaves
	// nothing, so the audit view still shows what anchored the search.
	for _, line := range lines {
		if !bankLinePattern.MatchString(line) {
			continue
		}
		trace["bankLine"] = line
		cleaned := branchSuffix.ReplaceAllString(line, "")
		cleaned = strings.TrimSpace(branchSuffixASCII.ReplaceAllString(cleaned, ""))
		builder.SetBankName(textutils.TitleCase(cleaned))
		break
	}

	if m := ibanPattern.FindStringSubmatch(upper); m != nil {
		iban := textutils.CompactWhitespace(m[1])
		trace["iban"] = iban
		if len(iban) > 34 {
			iban = iban[:34]
		}
		builder.SetIBAN(iban)
	}

	if m := accountPattern.FindStringSubmatch(upper); m != nil {
		account := textutils.CompactWhitespace(m[1])
		trace["account"] = account
		builder.SetBankAccount(account)
	}

	if m := serialPattern.FindStringSubmatch(upper); m != nil {
		trace["serialNumber"] = strings.TrimSpace(m[1])
		builder.SetSerialNumber(textutils.CompactWhitespace(m[1]))
	}

	// The raw branch span is kept for the bank-name fallback below.
	var branchRaw string
	if m := branchPattern.FindStringSubmatch(upper); m != nil {
		branchRaw = m[1]
		normalized := textutils.NormalizeWhitespace(branchRaw)
		trace["branch"] = normalized
		builder.SetBankBranch(textutils.TitleCase(normalized))
	}

	for _, matcher := range freeTextMatchers {
		m := matcher.pattern.FindStringSubmatch(upper)
		if m == nil {
			continue
		}
		normalized := textutils.NormalizeWhitespace(m[1])
		if matcher.set(builder, textutils.TitleCase(normalized)) {
			trace[matcher.name] = normalized
		}
	}

	// Anchored fields: scan lines in order, first matching line wins.
	for _, line := range lines {
		if !builder.HasDueDate() && dueDateGate.MatchString(line) {
			if parsed := dateutils.ParseDateCandidate(line); parsed != "" && builder.SetDueDate(parsed) {
				trace["dueDateLine"] = line
			}
		}
		if !builder.HasIssueDate() && issueDateGate.MatchString(line) {
			if parsed := dateutils.ParseDateCandidate(line); parsed != "" && builder.SetIssueDate(parsed) {
				trace["issueDateLine"] = line
			}
		}
		if !builder.HasAmount() {
			if amount, ok := currencyutils.ParseAmountCandidate(line); ok && builder.SetAmount(amount, currencyutils.DetectCurrency(line)) {
				trace["amountLine"] = line
			}
		}
	}

	// Unanchored fallbacks against the whole text, once per missing field.
	if !builder.HasDueDate() {
		if parsed := dateutils.ParseDateCandidate(text); parsed != "" && builder.SetDueDate(parsed) {
			trace["genericDate"] = parsed
		}
	}
	if !builder.HasAmount() {
		if amount, ok := currencyutils.ParseAmountCandidate(text); ok && builder.SetAmount(amount, currencyutils.DetectCurrency(text)) {
			trace["amountFallback"] = amount.String()
		}
	}

	// Derived fields run last and never override a direct match. The bank
	// name is synthesized from the first raw branch token when no BANKASI
	// line was found; the city is the last token of the normalized branch.
	if !builder.HasBankName() && branchRaw != "" {
		builder.SetBankName(textutils.TitleCase(strings.Split(branchRaw, " ")[0] + " Bankası"))
	}
	if branch := builder.Fields().BankBranch; branch != "" {
		parts := strings.Split(branch, " ")
		if len(parts) > 1 {
			builder.SetBankCity(textutils.TitleCase(parts[len(parts)-1]))
		}
	}

	return builder.Fields(), trace
}

// splitLines breaks the text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
