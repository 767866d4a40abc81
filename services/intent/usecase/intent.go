package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/intent"
	"github.com/piresc/arcpay/services/payment"
)

type intentUC struct {
	cfg   *models.Config
	model intent.IntentModel
	users payment.UserRepo
}

// NewIntentUC creates the intent classifier
func NewIntentUC(cfg *models.Config, model intent.IntentModel, users payment.UserRepo) intent.IntentUC {
	return &intentUC{
		cfg:   cfg,
		model: model,
		users: users,
	}
}

// Classify asks the model for an intent, fills in what it missed and routes the result
func (uc *intentUC) Classify(ctx context.Context, userID, text string) (*models.Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.ErrEmptyInput
	}

	c, err := uc.model.Classify(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to classify command: %w", err)
	}

	ent := c.Entities
	if ent.Amount == nil {
		ent.Amount = intent.ExtractAmount(text)
	}

	kind := c.Intent
	if intent.IsAnalysisRequest(text) {
		kind = models.IntentAnalyzeTransactions
	}

	cmd := &models.Command{
		UserID:     userID,
		Kind:       kind,
		Confidence: c.Confidence,
		RawText:    text,
	}

	switch {
	case kind.IsPayment():
		cmd.Payment = uc.paymentIntent(ctx, userID, text, ent)
	case kind == models.IntentAnalyzeTransactions:
		cmd.Analysis = &models.AnalysisIntent{Count: intent.ExtractAnalysisCount(text)}
	case kind == models.IntentStockPurchase:
		cmd.Stock = &models.StockIntent{Symbol: ent.Symbol, Amount: ent.Amount}
	default:
		cmd.Kind = models.IntentQuery
		cmd.Query = &models.QueryIntent{Question: text}
	}

	logger.InfoCtx(ctx, "Command classified",
		logger.String("user_id", userID),
		logger.String("intent", string(cmd.Kind)),
		logger.Float64("confidence", cmd.Confidence))
	return cmd, nil
}

func (uc *intentUC) paymentIntent(ctx context.Context, userID, text string, ent models.ClassifiedEntities) *models.PaymentIntent {
	pi := &models.PaymentIntent{
		Amount:             ent.Amount,
		Currency:           ent.Currency,
		RecipientID:        ent.RecipientID,
		RecipientName:      ent.RecipientName,
		Schedule:           ent.Schedule,
		ScheduledTimestamp: ent.ScheduledTimestamp,
	}

	user, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load user for recipient autofill", logger.String("user_id", userID), logger.Err(err))
	}
	if user != nil {
		autofillRecipient(user, text, pi)
	}

	if pi.Schedule == nil {
		pi.Schedule = intent.ExtractSchedule(text)
	}
	return pi
}

// autofillRecipient copies the first whitelisted recipient mentioned in text into empty fields of pi
func autofillRecipient(user *models.User, text string, pi *models.PaymentIntent) {
	lowered := strings.ToLower(text)
	for _, r := range user.WhitelistedRecipients {
		id := strings.ToLower(r.RecipientID)
		name := strings.ToLower(r.Name)
		if (id == "" || !strings.Contains(lowered, id)) && (name == "" || !strings.Contains(lowered, name)) {
			continue
		}

		if pi.RecipientID == "" {
			pi.RecipientID = r.RecipientID
		}
		if pi.RecipientName == "" {
			pi.RecipientName = r.Name
		}
		if pi.RecipientAddress == "" {
			pi.RecipientAddress = r.Address
		}
		if pi.Currency == "" {
			pi.Currency = r.Currency
		}
		return
	}
}
