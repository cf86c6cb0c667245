package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Budget struct {
	ID        int64           `json:"id"`
	UID       string          `json:"uid"`
	Name      string          `json:"name"`
	Cap       decimal.Decimal `json:"cap"`
	Currency  string          `json:"currency"`
	Period    string          `json:"period"`
	CreatedAt time.Time       `json:"created_at"`
}
