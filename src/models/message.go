package models

import "github.com/shopspring/decimal"

// RawMessage is a single SMS as submitted by the client. It is transient:
// only the extracted fields and the text itself get persisted.
type RawMessage struct {
	SMS    string  `json:"sms"`
	Sender *string `json:"sender,omitempty"`
}

type Direction string

const (
	DirectionCredit  Direction = "credit"
	DirectionDebit   Direction = "debit"
	DirectionUnknown Direction = "unknown"
)

type PaymentMode string

const (
	ModeUPI        PaymentMode = "UPI"
	ModeATM        PaymentMode = "ATM"
	ModeNetBanking PaymentMode = "NetBanking"
	ModeUnknown    PaymentMode = "Unknown"
)

// ExtractedFields holds whatever structured data could be pulled out of a
// message. Every field is independently optional; a nil pointer means the
// pattern did not match, which is a normal outcome and not an error.
type ExtractedFields struct {
	Amount     *decimal.Decimal `json:"amount"`
	Direction  Direction        `json:"txn_type"`
	Mode       PaymentMode      `json:"mode"`
	Reference  *string          `json:"ref_no"`
	Account    *string          `json:"account"`
	OccurredOn *string          `json:"date"` // raw date token, source formats are too inconsistent to parse safely
	Balance    *decimal.Decimal `json:"balance"`
}

// Empty reports whether extraction found nothing at all.
func (f ExtractedFields) Empty() bool {
	return f.Amount == nil && f.Direction == DirectionUnknown && f.Mode == ModeUnknown &&
		f.Reference == nil && f.Account == nil && f.OccurredOn == nil && f.Balance == nil
}
