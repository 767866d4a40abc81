package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/pkg/schedule"
	"github.com/piresc/arcpay/services/balance"
	"github.com/piresc/arcpay/services/guardian"
	"github.com/piresc/arcpay/services/payment"
	"github.com/shopspring/decimal"
)

const (
	defaultCurrency = "USDC"
	defaultDelay    = 5 * time.Minute

	reasonScheduled           = "Payment scheduled"
	reasonInsufficientBalance = "Insufficient balance at approval time"
	reasonManualReview        = "Manual review required"
	reasonRiskTooHigh         = "Risk too high"
)

type guardianUC struct {
	cfg         *models.Config
	users       payment.UserRepo
	payments    payment.PaymentRepo
	assessments payment.RiskAssessmentRepo
	balances    balance.BalanceUC
	scorer      guardian.RiskScorer
	verifier    guardian.RecipientVerifier
	notifier    payment.Notifier
	now         func() time.Time
}

// NewGuardianUC creates the risk guardian
func NewGuardianUC(
	cfg *models.Config,
	users payment.UserRepo,
	payments payment.PaymentRepo,
	assessments payment.RiskAssessmentRepo,
	balances balance.BalanceUC,
	scorer guardian.RiskScorer,
	verifier guardian.RecipientVerifier,
	notifier payment.Notifier,
) guardian.GuardianUC {
	return &guardianUC{
		cfg:         cfg,
		users:       users,
		payments:    payments,
		assessments: assessments,
		balances:    balances,
		scorer:      scorer,
		verifier:    verifier,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Evaluate scores a payment request, records the assessment and, once confirmed
// and approved, creates the payment in APPROVED.
func (uc *guardianUC) Evaluate(ctx context.Context, req *models.GuardianRequest) (*models.GuardianDecision, error) {
	user, err := uc.users.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", req.UserID, err)
	}
	if user == nil {
		return nil, models.ErrUnknownUser
	}

	ent := req.Entities
	if ent.Amount == nil {
		return nil, models.ErrMissingAmount
	}
	amount := *ent.Amount
	if !amount.IsPositive() {
		return nil, models.ErrInvalidAmount
	}

	recipient, isNew := resolveRecipient(user, ent)
	currency := firstNonEmpty(ent.Currency, recipient.Currency, uc.defaultCurrency())

	paymentID := ""
	if ent.Confirmed {
		paymentID, err = uc.paymentID(ctx, ent.PaymentID)
		if err != nil {
			return nil, err
		}
	}

	verification := uc.verify(ctx, recipient.Address)
	available := uc.balance(ctx, user)
	features := buildFeatures(user, ent, amount, available, isNew)
	score := uc.score(ctx, models.RiskContext{
		UserID:    user.UserID,
		Recipient: recipient,
		Amount:    amount,
		Currency:  currency,
		Balance:   available,
		Features:  features,
	})

	assessment := &models.RiskAssessment{
		ID:           uuid.New().String(),
		UserID:       user.UserID,
		PaymentID:    paymentID,
		Request:      *req,
		Features:     features,
		Model:        score,
		Verification: verification,
		Confirmed:    ent.Confirmed,
	}
	if err := uc.assessments.Append(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to record risk assessment: %w", err)
	}

	logger.InfoCtx(ctx, "Payment evaluated",
		logger.String("user_id", user.UserID),
		logger.String("payment_id", paymentID),
		logger.Float64("risk_score", score.RiskScore),
		logger.String("decision", string(score.Decision)),
		logger.Bool("confirmed", ent.Confirmed))

	if !ent.Confirmed {
		return &models.GuardianDecision{
			Decision:  models.DecisionAwaitingConfirmation,
			RiskScore: score.RiskScore,
			Reason: fmt.Sprintf("Confirm payment of %s %s to %s (id %s).",
				amount.String(), currency, recipient.Name, recipient.RecipientID),
		}, nil
	}

	switch score.Decision {
	case models.DecisionApprove:
		return uc.approve(ctx, user, ent, recipient, paymentID, amount, currency, available, score.RiskScore)
	case models.DecisionFlagForReview:
		body := fmt.Sprintf("User %s requested %s %s to %s (id %s). Risk score %.2f.",
			user.UserID, amount.String(), currency, recipient.Name, recipient.RecipientID, score.RiskScore)
		if err := uc.notifier.NotifyAdmin(ctx, "Payment flagged", body); err != nil {
			logger.WarnCtx(ctx, "Failed to notify admin", logger.String("user_id", user.UserID), logger.Err(err))
		}
		return &models.GuardianDecision{Decision: models.DecisionFlagForReview, RiskScore: score.RiskScore, Reason: reasonManualReview}, nil
	default:
		return &models.GuardianDecision{Decision: models.DecisionDeny, RiskScore: score.RiskScore, Reason: reasonRiskTooHigh}, nil
	}
}

func (uc *guardianUC) approve(
	ctx context.Context,
	user *models.User,
	ent models.PaymentIntent,
	recipient models.Recipient,
	paymentID string,
	amount decimal.Decimal,
	currency string,
	available decimal.Decimal,
	risk float64,
) (*models.GuardianDecision, error) {
	if available.LessThan(amount) {
		logger.WarnCtx(ctx, "Approval denied on balance",
			logger.String("user_id", user.UserID),
			logger.Decimal("amount", amount),
			logger.Decimal("balance", available))
		return &models.GuardianDecision{Decision: models.DecisionDeny, RiskScore: risk, Reason: reasonInsufficientBalance}, nil
	}

	var conditions models.Schedule
	if ent.Schedule != nil {
		conditions = *ent.Schedule
	}
	ts := uc.firstRun(ent, conditions)

	p := &models.Payment{
		PaymentID:          paymentID,
		UserID:             user.UserID,
		RecipientID:        recipient.RecipientID,
		RecipientAddress:   recipient.Address,
		Amount:             amount,
		Currency:           currency,
		Conditions:         conditions,
		Status:             models.PaymentStatusApproved,
		ScheduledTimestamp: &ts,
	}
	if err := uc.payments.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	logger.InfoCtx(ctx, "Payment approved",
		logger.String("payment_id", paymentID),
		logger.String("user_id", user.UserID),
		logger.Time("scheduled_timestamp", ts))
	return &models.GuardianDecision{
		Decision:  models.DecisionApprove,
		RiskScore: risk,
		PaymentID: paymentID,
		Reason:    reasonScheduled,
		Payment:   p,
	}, nil
}

// paymentID returns the caller supplied id or a fresh one. A supplied id may only
// re-confirm a payment that has not been picked up by the scheduler yet.
func (uc *guardianUC) paymentID(ctx context.Context, requested string) (string, error) {
	if requested == "" {
		return "pay-" + uuid.New().String()[:8], nil
	}

	existing, err := uc.payments.Get(ctx, requested)
	switch {
	case errors.Is(err, models.ErrPaymentNotFound):
		return requested, nil
	case err != nil:
		return "", fmt.Errorf("failed to load payment %s: %w", requested, err)
	case existing.Status != models.PaymentStatusApproved:
		return "", fmt.Errorf("payment %s is %s: %w", requested, existing.Status, models.ErrIllegalTransition)
	}
	return requested, nil
}

func (uc *guardianUC) verify(ctx context.Context, address string) models.VerificationResult {
	if address == "" {
		return models.VerificationResult{Status: models.VerificationUnknown}
	}
	res, err := uc.verifier.VerifyRecipient(ctx, address)
	if err != nil {
		logger.WarnCtx(ctx, "Recipient verification failed", logger.String("address", address), logger.Err(err))
		return models.VerificationResult{Status: models.VerificationUnverified, Details: err.Error()}
	}
	if res == nil {
		return models.VerificationResult{Status: models.VerificationUnknown}
	}
	return *res
}

func (uc *guardianUC) balance(ctx context.Context, user *models.User) decimal.Decimal {
	b, err := uc.balances.FetchBalance(ctx, user)
	if err != nil {
		logger.WarnCtx(ctx, "Balance unavailable, assuming zero", logger.String("user_id", user.UserID), logger.Err(err))
		return decimal.Zero
	}
	return b.Balance
}

// score never fails: scorer errors and unknown decisions are sent to review
func (uc *guardianUC) score(ctx context.Context, rc models.RiskContext) models.RiskScore {
	s, err := uc.scorer.ScoreRisk(ctx, rc)
	if err != nil || s == nil {
		logger.WarnCtx(ctx, "Risk scoring failed", logger.String("user_id", rc.UserID), logger.Err(err))
		return models.RiskScore{RiskScore: 1.0, Decision: models.DecisionFlagForReview}
	}
	if !s.Decision.IsModelDecision() {
		s.Decision = models.DecisionFlagForReview
	}
	return *s
}

func (uc *guardianUC) firstRun(ent models.PaymentIntent, conditions models.Schedule) time.Time {
	now := uc.now().UTC()
	if ent.ScheduledTimestamp != nil {
		return ent.ScheduledTimestamp.UTC()
	}
	if ent.Schedule != nil {
		if next, ok := schedule.NextRun(conditions, now); ok {
			return next
		}
	}
	delay := defaultDelay
	if uc.cfg != nil && uc.cfg.Guardian.DefaultDelay > 0 {
		delay = uc.cfg.Guardian.DefaultDelay
	}
	return now.Add(delay)
}

func (uc *guardianUC) defaultCurrency() string {
	if uc.cfg != nil && uc.cfg.Guardian.DefaultCurrency != "" {
		return uc.cfg.Guardian.DefaultCurrency
	}
	return defaultCurrency
}

// resolveRecipient looks the recipient up in the whitelist or synthesizes a new one
func resolveRecipient(user *models.User, ent models.PaymentIntent) (models.Recipient, bool) {
	if ent.RecipientID != "" {
		if r, ok := user.WhitelistedRecipients.Find(ent.RecipientID); ok {
			if r.Address == "" {
				r.Address = ent.RecipientAddress
			}
			return r, false
		}
	}
	return models.Recipient{
		RecipientID: firstNonEmpty(ent.RecipientID, "unknown"),
		Name:        firstNonEmpty(ent.RecipientName, "Unknown recipient"),
		Address:     ent.RecipientAddress,
		Currency:    firstNonEmpty(ent.Currency, defaultCurrency),
	}, true
}

func buildFeatures(user *models.User, ent models.PaymentIntent, amount, available decimal.Decimal, isNew bool) models.RiskFeatures {
	maxAmount := amount
	if user.Preferences.MaxPaymentAmount != nil {
		maxAmount = *user.Preferences.MaxPaymentAmount
	}
	ratio := decimal.NewFromInt(1)
	if !amount.IsZero() {
		ratio = available.Div(amount)
	}
	return models.RiskFeatures{
		Amount:          amount,
		MaxAmount:       maxAmount,
		FrequencyWeight: schedule.FrequencyWeight(ent.Schedule),
		IsNewRecipient:  isNew,
		BalanceRatio:    ratio,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
