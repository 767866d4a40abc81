package payment

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// PaymentRepo persists scheduled payments.
// UpdateStatus returns models.ErrIllegalTransition when the stored status may not move to status.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/arcpay/services/payment PaymentRepo,UserRepo,RiskAssessmentRepo
type PaymentRepo interface {
	List(ctx context.Context, userID string) ([]*models.Payment, error)
	Get(ctx context.Context, paymentID string) (*models.Payment, error)
	Upsert(ctx context.Context, payment *models.Payment) error
	UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus, update models.PaymentUpdate) (*models.Payment, error)
}

// UserRepo reads user profiles. A missing user is (nil, nil).
type UserRepo interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

// RiskAssessmentRepo is the append-only guardian audit log
type RiskAssessmentRepo interface {
	Append(ctx context.Context, assessment *models.RiskAssessment) error
	List(ctx context.Context) ([]*models.RiskAssessment, error)
}
