package guardian

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// RiskScorer grades a payment context. intent.IntentModel satisfies it.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/arcpay/services/guardian RiskScorer,RecipientVerifier
type RiskScorer interface {
	ScoreRisk(ctx context.Context, rc models.RiskContext) (*models.RiskScore, error)
}

// RecipientVerifier checks a recipient address with the payment rail. payment.PaymentAPI satisfies it.
type RecipientVerifier interface {
	VerifyRecipient(ctx context.Context, address string) (*models.VerificationResult, error)
}
