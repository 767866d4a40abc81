package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/payment"
	"github.com/piresc/arcpay/services/scheduler"
)

const engineBreakerName = "execution-engine"

// Engine submits payments to the payment API behind a circuit breaker
type Engine struct {
	api     payment.PaymentAPI
	breaker *circuitbreaker.CircuitBreaker
}

var _ scheduler.ExecutionEngine = (*Engine)(nil)

// NewEngine creates the execution engine. The breaker is registered on breakers when given.
func NewEngine(api payment.PaymentAPI, breakers *circuitbreaker.Manager, l *logger.ZapLogger) *Engine {
	cfg := circuitbreaker.DefaultConfig(engineBreakerName)
	var cb *circuitbreaker.CircuitBreaker
	if breakers != nil {
		cb = breakers.GetOrCreate(engineBreakerName, cfg)
	} else {
		cb = circuitbreaker.New(cfg, l)
	}
	return &Engine{api: api, breaker: cb}
}

// Execute transfers the payment amount. Each run is keyed by RunKey so retries of a run deduplicate.
func (e *Engine) Execute(ctx context.Context, p *models.Payment) (result models.ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorCtx(ctx, "Execution panicked", logger.String("payment_id", p.PaymentID), logger.Any("panic", r))
			result = failed(fmt.Errorf("execution panicked: %v", r))
		}
	}()

	currency := p.Currency
	if currency == "" {
		currency = "USDC"
	}
	req := models.ExecutionRequest{
		Amount:   p.Amount,
		Currency: currency,
		Recipient: models.ExecutionRecipient{
			RecipientID: p.RecipientID,
			Address:     p.RecipientAddress,
		},
		Metadata:       models.ExecutionMetadata{PaymentID: p.PaymentID},
		IdempotencyKey: p.RunKey(),
	}

	var resp *models.ExecutionResponse
	err := e.breaker.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		resp, callErr = e.api.Execute(ctx, req)
		return callErr
	})
	if err == nil && resp == nil {
		err = errors.New("empty execution response")
	}
	if err != nil {
		logger.WarnCtx(ctx, "Payment execution failed", logger.String("payment_id", p.PaymentID), logger.Err(err))
		return failed(err)
	}

	status := resp.Status
	if status == "" {
		status = models.ExecutionStatusSubmitted
	}
	return models.ExecutionResult{
		Success:       true,
		TransactionID: resp.TransactionID,
		Status:        status,
	}
}

func failed(err error) models.ExecutionResult {
	return models.ExecutionResult{
		Success: false,
		Status:  models.ExecutionStatusFailed,
		Error:   err.Error(),
	}
}
