package extract

import "strings"

// Transactional signal always beats promotional signal: a message that
// mentions a debit is ingested even if it also advertises a loan offer.
var transactionalKeywords = []string{
	"debited", "credited", "withdrawn", "payment", "transfer",
	"txn", "transaction", "purchase",
}

var promotionalKeywords = []string{
	"insurance", "loan offer", "apply now", "limited period offer",
	"discount", "sale", "emi offer", "download app", "cashback offer",
}

// IsPromotional reports whether a message is marketing noise that should
// never reach the classifier or the store. Empty text counts as noise;
// text with neither signal is let through.
func IsPromotional(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	lower := strings.ToLower(text)
	if containsAny(lower, transactionalKeywords) {
		return false
	}
	return containsAny(lower, promotionalKeywords)
}
