package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/shopspring/decimal"
)

var errSandboxRejected = errors.New("sandbox rail rejected transfer")

// SandboxRail is a deterministic in-process payment rail for local runs.
// Addresses starting with 0x or arc verify, balances come from the linked account,
// and a repeated idempotency key returns the first transaction id.
type SandboxRail struct {
	mu           sync.Mutex
	transactions map[string]string
	now          func() time.Time
}

// NewSandboxRail creates an empty sandbox
func NewSandboxRail() *SandboxRail {
	return &SandboxRail{
		transactions: make(map[string]string),
		now:          time.Now,
	}
}

// Execute records the transfer and returns a transaction id
func (s *SandboxRail) Execute(ctx context.Context, req models.ExecutionRequest) (*models.ExecutionResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errSandboxRejected)
	}
	if req.Recipient.RecipientID == "" && req.Recipient.Address == "" {
		return nil, fmt.Errorf("%w: recipient is required", errSandboxRejected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := req.Key()
	if txID, ok := s.transactions[key]; ok {
		return &models.ExecutionResponse{TransactionID: txID, Status: models.ExecutionStatusSubmitted}, nil
	}

	txID := "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if key != "" {
		s.transactions[key] = txID
	}
	logger.Info("Sandbox transfer submitted",
		logger.String("payment_id", req.Metadata.PaymentID),
		logger.String("idempotency_key", key),
		logger.String("transaction_id", txID),
		logger.Decimal("amount", req.Amount),
		logger.String("currency", req.Currency))
	return &models.ExecutionResponse{TransactionID: txID, Status: models.ExecutionStatusSubmitted}, nil
}

// VerifyRecipient accepts 0x and arc prefixed addresses
func (s *SandboxRail) VerifyRecipient(ctx context.Context, address string) (*models.VerificationResult, error) {
	if strings.HasPrefix(address, "0x") || strings.HasPrefix(address, "arc") {
		return &models.VerificationResult{Status: models.VerificationVerified}, nil
	}
	return &models.VerificationResult{Status: models.VerificationUnverified, Details: "address failed checksum"}, nil
}

// FetchBalance reports the balance stored on the linked account, zero when absent
func (s *SandboxRail) FetchBalance(ctx context.Context, account models.LinkedAccount) (*models.Balance, error) {
	balance := decimal.Zero
	if account.Balance != nil {
		balance = *account.Balance
	}
	currency := account.Currency
	if currency == "" {
		currency = "USDC"
	}
	return &models.Balance{Balance: balance, Currency: currency, FetchedAt: s.now().UTC()}, nil
}
