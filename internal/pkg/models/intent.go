package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IntentKind is the classified purpose of a command
type IntentKind string

const (
	IntentMakePayment         IntentKind = "make_payment"
	IntentSchedulePayment     IntentKind = "schedule_payment"
	IntentSettings            IntentKind = "settings"
	IntentAnalyzeTransactions IntentKind = "analyze_transactions"
	IntentStockPurchase       IntentKind = "stock_purchase"
	IntentQuery               IntentKind = "query"
)

// IsPayment reports whether commands of this kind are routed to the guardian
func (k IntentKind) IsPayment() bool {
	return k == IntentMakePayment || k == IntentSchedulePayment || k == IntentSettings
}

// Classification is the raw output of an intent model
type Classification struct {
	Intent     IntentKind         `json:"intent"`
	Confidence float64            `json:"confidence"`
	Entities   ClassifiedEntities `json:"entities"`
}

// ClassifiedEntities are the optional fields a model may extract
type ClassifiedEntities struct {
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	Currency           string           `json:"currency,omitempty"`
	RecipientID        string           `json:"recipientId,omitempty"`
	RecipientName      string           `json:"recipientName,omitempty"`
	Schedule           *Schedule        `json:"schedule,omitempty"`
	ScheduledTimestamp *time.Time       `json:"scheduledTimestamp,omitempty"`
	Symbol             string           `json:"symbol,omitempty"`
}

// PaymentIntent is the entity set of a payment command
type PaymentIntent struct {
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	Currency           string           `json:"currency,omitempty"`
	RecipientID        string           `json:"recipientId,omitempty"`
	RecipientName      string           `json:"recipientName,omitempty"`
	RecipientAddress   string           `json:"recipientAddress,omitempty"`
	Schedule           *Schedule        `json:"schedule,omitempty"`
	ScheduledTimestamp *time.Time       `json:"scheduledTimestamp,omitempty"`
	PaymentID          string           `json:"paymentId,omitempty"`
	Confirmed          bool             `json:"confirmed,omitempty"`
}

// QueryIntent is a free-form question about the user's payments
type QueryIntent struct {
	Question string `json:"question"`
}

// AnalysisIntent asks for a summary of the most recent executed transactions
type AnalysisIntent struct {
	Count int `json:"count"`
}

// StockIntent is recognised but not executed by this service
type StockIntent struct {
	Symbol string           `json:"symbol,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// Command is a classified user command. Exactly one of the intent pointers is set, matching Kind.
type Command struct {
	UserID     string          `json:"userId"`
	Kind       IntentKind      `json:"kind"`
	Confidence float64         `json:"confidence"`
	RawText    string          `json:"rawText"`
	Payment    *PaymentIntent  `json:"payment,omitempty"`
	Query      *QueryIntent    `json:"query,omitempty"`
	Analysis   *AnalysisIntent `json:"analysis,omitempty"`
	Stock      *StockIntent    `json:"stock,omitempty"`
}
