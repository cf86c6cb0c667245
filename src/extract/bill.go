package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// "<amount> [INR/Rs/₹] [is] due [date/on] <DD[-/]MM[-/]YYYY>". Messages
// without both an amount and a due date are not bills.
var billPattern = regexp.MustCompile(`(?i)([0-9]+(?:,[0-9]{2,3})*(?:\.[0-9]+)?)\s*(?:INR|Rs\.?|₹)?(?:\s*is)?\s*due(?:\s+date|\s+on)?\s*:?\s*([0-9]{2}[-/][0-9]{2}[-/][0-9]{4})`)

type BillDetails struct {
	Amount  decimal.Decimal
	DueDate time.Time
}

// ExtractBill parses a bill-reminder message. Unlike transaction date
// tokens, a due date is normalized to a calendar date because reminders
// are scheduled against it; senders consistently use DD-MM-YYYY here.
func ExtractBill(text string) (BillDetails, bool) {
	m := billPattern.FindStringSubmatch(text)
	if m == nil {
		return BillDetails{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return BillDetails{}, false
	}
	dueDate, err := time.Parse("02-01-2006", strings.ReplaceAll(m[2], "/", "-"))
	if err != nil {
		return BillDetails{}, false
	}

	return BillDetails{Amount: amount, DueDate: dueDate}, true
}
