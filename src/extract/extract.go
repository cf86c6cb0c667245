// Package extract pulls structured transaction fields out of free-form
// bank notification text. Every pattern is searched independently and
// every field is optional: a message that matches nothing yields an empty
// ExtractedFields, never an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"spendsense-server/src/models"
)

var (
	// Currency-prefixed number, thousands separators allowed.
	amountPattern = regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]+)?)`)

	// "Ref"/"Reference"/"Ref No" followed by an alphanumeric token. The
	// \b after ref keeps "Refund" from matching.
	referencePattern = regexp.MustCompile(`(?i)\bref(?:erence)?\b\.?\s*(?:no\b\.?)?\s*[:\-]?\s*([A-Za-z0-9/_-]+)`)

	// "A/c" marker, optionally masked (XX1234, ***1234), then the digit run.
	accountPattern = regexp.MustCompile(`(?i)\ba/c\b[.\s:\-]*(?:no[.\s]*)?[Xx*]*([0-9]+)`)

	// DD-Mon-YY(YY) preferred over plain numeric DD-MM-YY(YY). The raw
	// token is kept as-is; month/day order is ambiguous across senders.
	datePattern = regexp.MustCompile(`(?i)\b([0-9]{1,2}-(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)-[0-9]{2,4}|[0-9]{1,2}[-/][0-9]{1,2}[-/][0-9]{2,4})\b`)

	// "Avl Bal"/"balance" marker followed by a currency-prefixed number.
	balancePattern = regexp.MustCompile(`(?i)(?:avl\.?\s*bal\.?|available\s+balance|balance)[^0-9]*?(?:INR|Rs\.?|₹)?\s*([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]+)?)`)
)

// Debit keywords are checked first and win when a message carries both
// signals ("credited back after being withdrawn" is still a debit).
var (
	debitKeywords  = []string{"debited", "spent", "withdrawn", "deducted", "purchased"}
	creditKeywords = []string{"credited", "received", "deposited", "refunded"}
)

// Mode markers in priority order; first group with a hit wins.
var modeMarkers = []struct {
	mode     models.PaymentMode
	keywords []string
}{
	{models.ModeUPI, []string{"upi", "vpa"}},
	{models.ModeATM, []string{"atm", "cash wdl", "cash withdrawal"}},
	{models.ModeNetBanking, []string{"neft", "imps", "rtgs", "netbanking", "net banking"}},
}

// Extract runs every field pattern over the message text. Pure function,
// no gating between fields.
func Extract(text string) models.ExtractedFields {
	fields := models.ExtractedFields{
		Direction: models.DirectionUnknown,
		Mode:      models.ModeUnknown,
	}

	if m := amountPattern.FindStringSubmatch(text); m != nil {
		if amt, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
			fields.Amount = &amt
		}
	}
	if m := referencePattern.FindStringSubmatch(text); m != nil {
		ref := m[1]
		fields.Reference = &ref
	}
	if m := accountPattern.FindStringSubmatch(text); m != nil {
		account := m[1]
		fields.Account = &account
	}
	if m := datePattern.FindStringSubmatch(text); m != nil {
		date := m[1]
		fields.OccurredOn = &date
	}
	if m := balancePattern.FindStringSubmatch(text); m != nil {
		if bal, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", "")); err == nil {
			fields.Balance = &bal
		}
	}

	lower := strings.ToLower(text)
	if containsAny(lower, debitKeywords) {
		fields.Direction = models.DirectionDebit
	} else if containsAny(lower, creditKeywords) {
		fields.Direction = models.DirectionCredit
	}
	for _, group := range modeMarkers {
		if containsAny(lower, group.keywords) {
			fields.Mode = group.mode
			break
		}
	}

	return fields
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
