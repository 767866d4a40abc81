package models

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

// Decision is the outcome of a guardian evaluation
type Decision string

const (
	DecisionAwaitingConfirmation Decision = "AWAITING_CONFIRMATION"
	DecisionApprove              Decision = "APPROVE"
	DecisionDeny                 Decision = "DENY"
	DecisionFlagForReview        Decision = "FLAG_FOR_REVIEW"
	DecisionAnalysis             Decision = "ANALYSIS"
)

// IsModelDecision reports whether d is a decision a risk scorer may return
func (d Decision) IsModelDecision() bool {
	return d == DecisionApprove || d == DecisionDeny || d == DecisionFlagForReview
}

// VerificationStatus values
const (
	VerificationVerified   = "verified"
	VerificationUnverified = "unverified"
	VerificationUnknown    = "unknown"
)

// VerificationResult records what the payment API said about a recipient address
type VerificationResult struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// Value implements driver.Valuer
func (v VerificationResult) Value() (driver.Value, error) {
	return jsonValue(v)
}

// Scan implements sql.Scanner
func (v *VerificationResult) Scan(src interface{}) error {
	return jsonScan(src, v)
}

// RiskFeatures are the inputs handed to the risk scorer
type RiskFeatures struct {
	Amount          decimal.Decimal `json:"amount"`
	MaxAmount       decimal.Decimal `json:"maxAmount"`
	FrequencyWeight int             `json:"frequencyWeight"`
	IsNewRecipient  bool            `json:"isNewRecipient"`
	BalanceRatio    decimal.Decimal `json:"balanceRatio"`
}

// Value implements driver.Valuer
func (f RiskFeatures) Value() (driver.Value, error) {
	return jsonValue(f)
}

// Scan implements sql.Scanner
func (f *RiskFeatures) Scan(src interface{}) error {
	return jsonScan(src, f)
}

// RiskContext is the full context a risk scorer evaluates
type RiskContext struct {
	UserID    string          `json:"userId"`
	Recipient Recipient       `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Features  RiskFeatures    `json:"features"`
}

// RiskScore is the scorer output
type RiskScore struct {
	RiskScore float64  `json:"riskScore"`
	Decision  Decision `json:"decision"`
}

// Value implements driver.Valuer
func (s RiskScore) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements sql.Scanner
func (s *RiskScore) Scan(src interface{}) error {
	return jsonScan(src, s)
}

// GuardianRequest is a payment command submitted for evaluation
type GuardianRequest struct {
	UserID   string        `json:"userId"`
	Intent   IntentKind    `json:"intent"`
	Entities PaymentIntent `json:"entities"`
	RawText  string        `json:"rawText,omitempty"`
}

// Value implements driver.Valuer
func (r GuardianRequest) Value() (driver.Value, error) {
	return jsonValue(r)
}

// Scan implements sql.Scanner
func (r *GuardianRequest) Scan(src interface{}) error {
	return jsonScan(src, r)
}

// RiskAssessment is the append-only audit record of one evaluation
type RiskAssessment struct {
	ID           string             `json:"id" db:"id"`
	UserID       string             `json:"userId" db:"user_id"`
	PaymentID    string             `json:"paymentId,omitempty" db:"payment_id"`
	Request      GuardianRequest    `json:"request" db:"request"`
	Features     RiskFeatures       `json:"features" db:"features"`
	Model        RiskScore          `json:"model" db:"model"`
	Verification VerificationResult `json:"verification" db:"verification"`
	Confirmed    bool               `json:"confirmed" db:"confirmed"`
	CreatedAt    time.Time          `json:"timestamp" db:"created_at"`
}

// GuardianDecision is returned to the command layer
type GuardianDecision struct {
	Decision  Decision `json:"decision"`
	RiskScore float64  `json:"riskScore"`
	PaymentID string   `json:"paymentId,omitempty"`
	Reason    string   `json:"reason"`
	Payment   *Payment `json:"payment,omitempty"`
}
