package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/arcpay/internal/pkg/http"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// HTTPModel calls a hosted model over JSON/HTTP
type HTTPModel struct {
	client *httpclient.Client
}

// NewHTTPModel creates a model client for cfg.URL
func NewHTTPModel(cfg models.ModelConfig, breakers *circuitbreaker.Manager, l *logger.ZapLogger) *HTTPModel {
	return &HTTPModel{
		client: httpclient.NewClient(httpclient.ClientConfig{
			Name:       "intent-model",
			BaseURL:    cfg.URL,
			BearerKey:  cfg.APIKey,
			Timeout:    cfg.Timeout,
			MaxRetries: 1,
		}, breakers, l),
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type answerRequest struct {
	Question string   `json:"question"`
	Facts    []string `json:"facts"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

// Classify posts the text to /classify
func (m *HTTPModel) Classify(ctx context.Context, text string) (*models.Classification, error) {
	var out models.Classification
	if err := m.client.PostJSON(ctx, "/classify", classifyRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	if out.Intent == "" {
		return nil, fmt.Errorf("model returned no intent")
	}
	return &out, nil
}

// ScoreRisk posts the risk context to /score
func (m *HTTPModel) ScoreRisk(ctx context.Context, rc models.RiskContext) (*models.RiskScore, error) {
	var out models.RiskScore
	if err := m.client.PostJSON(ctx, "/score", rc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnswerQuestion posts the question and facts to /answer
func (m *HTTPModel) AnswerQuestion(ctx context.Context, question string, facts []string) (string, error) {
	var out answerResponse
	if err := m.client.PostJSON(ctx, "/answer", answerRequest{Question: question, Facts: facts}, &out); err != nil {
		return "", err
	}
	if out.Answer == "" {
		return "", fmt.Errorf("model returned an empty answer")
	}
	return out.Answer, nil
}
