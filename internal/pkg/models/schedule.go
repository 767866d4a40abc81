package models

import "database/sql/driver"

// Frequency identifies how a recurring payment repeats
type Frequency string

const (
	FrequencyInterval Frequency = "interval"
	FrequencyMonthly  Frequency = "monthly"
)

// Schedule is the condition attached to a payment. The zero value is a one-time payment.
type Schedule struct {
	Recurring       bool      `json:"recurring,omitempty"`
	Frequency       Frequency `json:"frequency,omitempty"`
	IntervalSeconds int64     `json:"intervalSeconds,omitempty"`
	DayOfMonth      int       `json:"dayOfMonth,omitempty"`
}

// IsZero reports whether the schedule describes a one-time payment
func (s Schedule) IsZero() bool {
	return s == Schedule{}
}

// Value implements driver.Valuer
func (s Schedule) Value() (driver.Value, error) {
	return jsonValue(s)
}

// Scan implements sql.Scanner
func (s *Schedule) Scan(src interface{}) error {
	return jsonScan(src, s)
}
