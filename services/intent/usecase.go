package intent

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// IntentUC turns free text into a routed command
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/intent IntentUC
type IntentUC interface {
	Classify(ctx context.Context, userID, text string) (*models.Command, error)
}
