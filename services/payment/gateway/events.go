package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/arcpay/internal/pkg/constants"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// EventPublisher publishes payment outcomes on NATS. A nil publisher only logs.
type EventPublisher struct {
	publisher JSONPublisher
}

// NewEventPublisher creates an event publisher. publisher may be nil.
func NewEventPublisher(publisher JSONPublisher) *EventPublisher {
	return &EventPublisher{publisher: publisher}
}

func eventSubject(status models.PaymentStatus) string {
	switch status {
	case models.PaymentStatusExecuted:
		return constants.SubjectPaymentExecuted
	case models.PaymentStatusScheduled:
		return constants.SubjectPaymentScheduled
	default:
		return constants.SubjectPaymentFailed
	}
}

// PublishPaymentEvent sends event on the subject matching its status
func (p *EventPublisher) PublishPaymentEvent(ctx context.Context, event models.PaymentEvent) error {
	subject := eventSubject(event.Status)
	logger.InfoCtx(ctx, "Payment event",
		logger.String("subject", subject),
		logger.String("payment_id", event.PaymentID),
		logger.String("status", string(event.Status)))

	if p.publisher == nil {
		return nil
	}
	if err := p.publisher.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}
	return nil
}
