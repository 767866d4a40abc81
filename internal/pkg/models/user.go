package models

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

// Notification channels
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// User is the owner of payments. The pipeline treats it as read-only.
type User struct {
	UserID                string         `json:"userId" db:"user_id"`
	Name                  string         `json:"name" db:"name"`
	Email                 string         `json:"email,omitempty" db:"email"`
	Phone                 string         `json:"phone,omitempty" db:"phone"`
	Preferences           Preferences    `json:"preferences" db:"preferences"`
	WhitelistedRecipients RecipientList  `json:"whitelistedRecipients" db:"whitelisted_recipients"`
	LinkedAccounts        LinkedAccounts `json:"linkedAccounts" db:"linked_accounts"`
	CreatedAt             time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time      `json:"updatedAt" db:"updated_at"`
}

// Preferences holds per-user limits and notification settings
type Preferences struct {
	MaxPaymentAmount    *decimal.Decimal `json:"maxPaymentAmount,omitempty"`
	NotificationChannel string           `json:"notificationChannel,omitempty"`
}

// Value implements driver.Valuer
func (p Preferences) Value() (driver.Value, error) {
	return jsonValue(p)
}

// Scan implements sql.Scanner
func (p *Preferences) Scan(src interface{}) error {
	return jsonScan(src, p)
}

// Recipient is a whitelisted payee owned by a user profile
type Recipient struct {
	RecipientID string `json:"recipientId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Currency    string `json:"currency"`
}

// RecipientList is stored as a JSONB array
type RecipientList []Recipient

// Value implements driver.Valuer
func (l RecipientList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue([]Recipient{})
	}
	return jsonValue([]Recipient(l))
}

// Scan implements sql.Scanner
func (l *RecipientList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

// Find returns the whitelisted recipient with the given id
func (l RecipientList) Find(recipientID string) (Recipient, bool) {
	for _, r := range l {
		if r.RecipientID == recipientID {
			return r, true
		}
	}
	return Recipient{}, false
}

// LinkedAccount is a wallet the user pays from. Balance is only used by the sandbox rail.
type LinkedAccount struct {
	AccountID string           `json:"accountId"`
	WalletID  string           `json:"walletId"`
	Currency  string           `json:"currency"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
}

// LinkedAccounts is stored as a JSONB array
type LinkedAccounts []LinkedAccount

// Value implements driver.Valuer
func (a LinkedAccounts) Value() (driver.Value, error) {
	if a == nil {
		return jsonValue([]LinkedAccount{})
	}
	return jsonValue([]LinkedAccount(a))
}

// Scan implements sql.Scanner
func (a *LinkedAccounts) Scan(src interface{}) error {
	return jsonScan(src, a)
}

// Primary returns the first linked account
func (u *User) Primary() (LinkedAccount, bool) {
	if u == nil || len(u.LinkedAccounts) == 0 {
		return LinkedAccount{}, false
	}
	return u.LinkedAccounts[0], true
}

// Contact resolves the address used to reach the user on channel.
// Unknown channels fall back to email.
func (u *User) Contact(channel string) string {
	if channel == ChannelSMS {
		return u.Phone
	}
	return u.Email
}
