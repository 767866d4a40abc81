package guardian

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// GuardianUC evaluates payment commands and creates approved payments
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/guardian GuardianUC
type GuardianUC interface {
	Evaluate(ctx context.Context, req *models.GuardianRequest) (*models.GuardianDecision, error)
}
