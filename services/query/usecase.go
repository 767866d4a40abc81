package query

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// QueryUC answers questions about a user's payments
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/query QueryUC
type QueryUC interface {
	Answer(ctx context.Context, userID, question string) (*models.QueryAnswer, error)
	Analyze(ctx context.Context, userID, question string, count int) (*models.AnalysisResult, error)
}
