package scheduler

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/models"
)

// SchedulerUC advances due payments one tick at a time
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/arcpay/services/scheduler SchedulerUC
type SchedulerUC interface {
	Tick(ctx context.Context) ([]models.TickResult, error)
}
