package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bill struct {
	ID        string          `json:"id"`
	UID       string          `json:"uid"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	DueDate   time.Time       `json:"due_date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	SMSSender *string         `json:"sms_sender"`
	SMSBody   string          `json:"sms_body"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
