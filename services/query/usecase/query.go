package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/balance"
	"github.com/piresc/arcpay/services/payment"
	"github.com/piresc/arcpay/services/query"
)

const (
	maxFacts = 5

	noExecutedTransactions = "No executed transactions available to analyze."
	defaultAnalysisPrompt  = "Analyze past transactions."
)

var topicKeywords = []struct {
	topic    models.QueryTopic
	keywords []string
}{
	{models.TopicUpcoming, []string{"upcoming", "next", "scheduled"}},
	{models.TopicHistory, []string{"executed", "history", "past"}},
	{models.TopicRisk, []string{"risk", "flag"}},
	{models.TopicBalance, []string{"balance"}},
}

type queryUC struct {
	payments    payment.PaymentRepo
	assessments payment.RiskAssessmentRepo
	users       payment.UserRepo
	balances    balance.BalanceUC
	answerer    query.Answerer
}

// NewQueryUC creates the query service
func NewQueryUC(
	payments payment.PaymentRepo,
	assessments payment.RiskAssessmentRepo,
	users payment.UserRepo,
	balances balance.BalanceUC,
	answerer query.Answerer,
) query.QueryUC {
	return &queryUC{
		payments:    payments,
		assessments: assessments,
		users:       users,
		balances:    balances,
		answerer:    answerer,
	}
}

// DetermineTopic picks the fact source for a question. Unmatched questions are about upcoming payments.
func DetermineTopic(question string) models.QueryTopic {
	lowered := strings.ToLower(question)
	for _, t := range topicKeywords {
		for _, kw := range t.keywords {
			if strings.Contains(lowered, kw) {
				return t.topic
			}
		}
	}
	return models.TopicUpcoming
}

// Answer gathers facts for the question's topic and asks the model to phrase them
func (uc *queryUC) Answer(ctx context.Context, userID, question string) (*models.QueryAnswer, error) {
	topic := DetermineTopic(question)

	var (
		facts []string
		err   error
	)
	switch topic {
	case models.TopicHistory:
		facts, err = uc.history(ctx, userID)
	case models.TopicRisk:
		facts, err = uc.riskFlags(ctx, userID)
	case models.TopicBalance:
		facts, err = uc.balance(ctx, userID)
	default:
		facts, err = uc.upcoming(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Answering question",
		logger.String("user_id", userID),
		logger.String("topic", string(topic)),
		logger.Int("facts", len(facts)))

	answer, err := uc.answerer.AnswerQuestion(ctx, question, facts)
	if err != nil {
		return nil, fmt.Errorf("failed to answer question: %w", err)
	}
	return &models.QueryAnswer{Topic: topic, Answer: answer, Facts: facts}, nil
}

// Analyze summarizes the count most recent executed payments of the user
func (uc *queryUC) Analyze(ctx context.Context, userID, question string, count int) (*models.AnalysisResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required for analysis: %w", models.ErrEmptyInput)
	}
	if count <= 0 {
		count = 2
	}

	executed, err := uc.executed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(executed) == 0 {
		return &models.AnalysisResult{Decision: models.DecisionAnalysis, Summary: noExecutedTransactions}, nil
	}
	if len(executed) > count {
		executed = executed[:count]
	}

	facts := make([]string, 0, len(executed))
	for _, p := range executed {
		when := p.UpdatedAt
		if p.LastExecutedAt != nil {
			when = *p.LastExecutedAt
		}
		facts = append(facts, fmt.Sprintf("Payment %s -> %s executed for %s %s on %s",
			p.PaymentID, p.RecipientID, p.Amount.String(), p.Currency, when.UTC().Format(time.RFC3339)))
	}

	if question == "" {
		question = defaultAnalysisPrompt
	}
	summary, err := uc.answerer.AnswerQuestion(ctx, question, facts)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze transactions: %w", err)
	}
	return &models.AnalysisResult{Decision: models.DecisionAnalysis, Summary: summary, Transactions: facts}, nil
}

func (uc *queryUC) upcoming(ctx context.Context, userID string) ([]string, error) {
	all, err := uc.payments.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var upcoming []*models.Payment
	for _, p := range all {
		if p.Status == models.PaymentStatusApproved || p.Status == models.PaymentStatusScheduled {
			upcoming = append(upcoming, p)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i].ScheduledTimestamp, upcoming[j].ScheduledTimestamp
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return a.Before(*b)
	})
	return formatPayments(upcoming), nil
}

func (uc *queryUC) history(ctx context.Context, userID string) ([]string, error) {
	executed, err := uc.executed(ctx, userID)
	if err != nil {
		return nil, err
	}
	return formatPayments(executed), nil
}

// executed lists the user's EXECUTED payments, most recently updated first
func (uc *queryUC) executed(ctx context.Context, userID string) ([]*models.Payment, error) {
	all, err := uc.payments.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var executed []*models.Payment
	for _, p := range all {
		if p.Status == models.PaymentStatusExecuted {
			executed = append(executed, p)
		}
	}
	sort.SliceStable(executed, func(i, j int) bool {
		return executed[i].UpdatedAt.After(executed[j].UpdatedAt)
	})
	return executed, nil
}

func (uc *queryUC) riskFlags(ctx context.Context, userID string) ([]string, error) {
	all, err := uc.assessments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk assessments: %w", err)
	}

	var facts []string
	for _, a := range all {
		if a.UserID != userID || a.Model.Decision != models.DecisionFlagForReview {
			continue
		}
		facts = append(facts, fmt.Sprintf("Request on %s flagged with risk %.2f",
			a.CreatedAt.UTC().Format(time.RFC3339), a.Model.RiskScore))
		if len(facts) == maxFacts {
			break
		}
	}
	return facts, nil
}

func (uc *queryUC) balance(ctx context.Context, userID string) ([]string, error) {
	user, err := uc.users.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return []string{"User record missing"}, nil
	}

	b, err := uc.balances.FetchBalance(ctx, user)
	if err != nil {
		return []string{fmt.Sprintf("Balance check failed: %v", err)}, nil
	}
	return []string{fmt.Sprintf("Current balance: %s %s", b.Balance.String(), b.Currency)}, nil
}

func formatPayments(payments []*models.Payment) []string {
	if len(payments) > maxFacts {
		payments = payments[:maxFacts]
	}
	facts := make([]string, 0, len(payments))
	for _, p := range payments {
		when := "unscheduled"
		if p.ScheduledTimestamp != nil {
			when = p.ScheduledTimestamp.UTC().Format(time.RFC3339)
		}
		facts = append(facts, fmt.Sprintf("Payment %s to %s for %s %s is %s on %s",
			p.PaymentID, p.RecipientID, p.Amount.String(), p.Currency, p.Status, when))
	}
	return facts
}
