package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is a point-in-time wallet balance
type Balance struct {
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
