package intent

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// IntentModel is the language model behind classification, risk scoring and answers
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/arcpay/services/intent IntentModel
type IntentModel interface {
	Classify(ctx context.Context, text string) (*models.Classification, error)
	ScoreRisk(ctx context.Context, rc models.RiskContext) (*models.RiskScore, error)
	AnswerQuestion(ctx context.Context, question string, facts []string) (string, error)
}
