package classifier

import "strings"

type fallbackRule struct {
	keywords []string
	label    string
}

// Ordered most specific to most general; first hit wins.
var fallbackRules = []fallbackRule{
	{[]string{"upi", "vpa"}, "UPI"},
	{[]string{"atm", "cash wdl", "cash withdrawal"}, "ATM Withdrawal"},
	{[]string{"credit card", "debit card", "card", "point of sale"}, "Card Payment"},
	{[]string{"salary", "payroll"}, "Salary"},
	{[]string{"loan", "emi"}, "Loan"},
	{[]string{"recharge", "top-up", "topup"}, "Recharge"},
}

const defaultCategory = "Bank Transfer"

// FallbackCategory derives a label from ordered keyword rules over the
// lowercased text. Always returns a non-empty label; "Bank Transfer" is
// the terminal default.
func FallbackCategory(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return defaultCategory
}
