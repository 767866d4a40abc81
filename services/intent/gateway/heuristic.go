package gateway

import (
	"context"
	"math"
	"strings"

	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/intent"
	"github.com/shopspring/decimal"
)

var (
	stockKeywords    = []string{"stock", "stocks", "equity", "equities", "share", "shares"}
	paymentKeywords  = []string{"pay", "send", "transfer", "purchase"}
	scheduleKeywords = []string{"schedule", "recurring", "every"}
)

// HeuristicModel is the deterministic keyword model. It never fails.
type HeuristicModel struct{}

var _ intent.IntentModel = HeuristicModel{}

// NewHeuristicModel creates the keyword model
func NewHeuristicModel() HeuristicModel {
	return HeuristicModel{}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Classify picks an intent from keywords and pulls out the first number and currency
func (HeuristicModel) Classify(_ context.Context, text string) (*models.Classification, error) {
	lowered := strings.ToLower(text)

	kind := models.IntentQuery
	switch {
	case containsAny(lowered, stockKeywords):
		kind = models.IntentStockPurchase
	case containsAny(lowered, paymentKeywords):
		kind = models.IntentMakePayment
	}
	if kind != models.IntentStockPurchase && containsAny(lowered, scheduleKeywords) {
		kind = models.IntentSchedulePayment
	}

	var entities models.ClassifiedEntities
	entities.Amount = intent.ExtractAmount(lowered)
	if strings.Contains(lowered, "usdc") || strings.Contains(lowered, "usd") {
		entities.Currency = "USDC"
	}

	return &models.Classification{Intent: kind, Confidence: 0.5, Entities: entities}, nil
}

// ScoreRisk is amount over the user's maximum, capped at 1.
// Above 0.85 denies, above 0.6 flags for review.
func (HeuristicModel) ScoreRisk(_ context.Context, rc models.RiskContext) (*models.RiskScore, error) {
	amount := rc.Amount
	maxAmount := rc.Features.MaxAmount
	if !maxAmount.IsPositive() {
		maxAmount = amount
	}
	if !maxAmount.IsPositive() {
		maxAmount = decimal.NewFromInt(1)
	}

	ratio, _ := amount.Div(maxAmount).Float64()
	risk := math.Round(math.Min(1, ratio)*100) / 100

	decision := models.DecisionApprove
	switch {
	case risk > 0.85:
		decision = models.DecisionDeny
	case risk > 0.6:
		decision = models.DecisionFlagForReview
	}
	return &models.RiskScore{RiskScore: risk, Decision: decision}, nil
}

// AnswerQuestion lists the facts as bullet points
func (HeuristicModel) AnswerQuestion(_ context.Context, _ string, facts []string) (string, error) {
	if len(facts) == 0 {
		facts = []string{"No records available."}
	}
	var b strings.Builder
	b.WriteString("Here is what I found:")
	for _, f := range facts {
		b.WriteString("\n- ")
		b.WriteString(f)
	}
	return b.String(), nil
}
