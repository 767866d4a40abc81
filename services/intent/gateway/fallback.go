package gateway

import (
	"context"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/intent"
)

// FallbackModel answers with fallback whenever primary fails
type FallbackModel struct {
	primary  intent.IntentModel
	fallback intent.IntentModel
}

// NewFallbackModel wraps primary
func NewFallbackModel(primary, fallback intent.IntentModel) *FallbackModel {
	return &FallbackModel{primary: primary, fallback: fallback}
}

// NewIntentModel returns the hosted model behind a heuristic fallback when cfg.URL is set,
// and the heuristic model otherwise
func NewIntentModel(cfg models.ModelConfig, breakers *circuitbreaker.Manager, l *logger.ZapLogger) intent.IntentModel {
	if cfg.URL == "" {
		logger.Info("Using heuristic intent model")
		return NewHeuristicModel()
	}
	logger.Info("Using hosted intent model", logger.String("url", cfg.URL))
	return NewFallbackModel(NewHTTPModel(cfg, breakers, l), NewHeuristicModel())
}

// Classify delegates to primary, then fallback
func (m *FallbackModel) Classify(ctx context.Context, text string) (*models.Classification, error) {
	out, err := m.primary.Classify(ctx, text)
	if err == nil {
		return out, nil
	}
	logger.WarnCtx(ctx, "Intent model unavailable, using fallback", logger.String("call", "classify"), logger.Err(err))
	return m.fallback.Classify(ctx, text)
}

// ScoreRisk delegates to primary, then fallback
func (m *FallbackModel) ScoreRisk(ctx context.Context, rc models.RiskContext) (*models.RiskScore, error) {
	out, err := m.primary.ScoreRisk(ctx, rc)
	if err == nil {
		return out, nil
	}
	logger.WarnCtx(ctx, "Intent model unavailable, using fallback", logger.String("call", "score"), logger.Err(err))
	return m.fallback.ScoreRisk(ctx, rc)
}

// AnswerQuestion delegates to primary, then fallback
func (m *FallbackModel) AnswerQuestion(ctx context.Context, question string, facts []string) (string, error) {
	out, err := m.primary.AnswerQuestion(ctx, question, facts)
	if err == nil {
		return out, nil
	}
	logger.WarnCtx(ctx, "Intent model unavailable, using fallback", logger.String("call", "answer"), logger.Err(err))
	return m.fallback.AnswerQuestion(ctx, question, facts)
}
