package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/arcpay/internal/pkg/models"
	balancemocks "github.com/piresc/arcpay/services/balance/mocks"
	"github.com/piresc/arcpay/services/guardian"
	"github.com/piresc/arcpay/services/guardian/mocks"
	intentgw "github.com/piresc/arcpay/services/intent/gateway"
	paymentgw "github.com/piresc/arcpay/services/payment/gateway"
	paymentmocks "github.com/piresc/arcpay/services/payment/mocks"
	"github.com/piresc/arcpay/services/payment/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *guardianUC
	store    *repository.MemoryStore
	balances *balancemocks.MockBalanceUC
	notifier *paymentmocks.MockNotifier
}

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newFixture(t *testing.T, ctrl *gomock.Controller, scorer guardian.RiskScorer) *fixture {
	store := repository.NewMemoryStore()
	require.NoError(t, store.SaveUser(context.Background(), &models.User{
		UserID: "user-1",
		Name:   "Dana",
		Email:  "dana@example.com",
		Preferences: models.Preferences{
			MaxPaymentAmount: dec(500),
		},
		WhitelistedRecipients: models.RecipientList{
			{RecipientID: "alice", Name: "Alice", Address: "0xalice", Currency: "USDC"},
			{RecipientID: "bob", Name: "Bob", Address: "0xbob", Currency: "USDC"},
		},
		LinkedAccounts: models.LinkedAccounts{{AccountID: "acc-1", WalletID: "w-1", Currency: "USDC"}},
	}))
	require.NoError(t, store.SaveUser(context.Background(), &models.User{UserID: "user-2", Name: "Eli"}))

	balances := balancemocks.NewMockBalanceUC(ctrl)
	notifier := paymentmocks.NewMockNotifier(ctrl)
	if scorer == nil {
		scorer = intentgw.NewHeuristicModel()
	}

	uc := NewGuardianUC(
		&models.Config{Guardian: models.GuardianConfig{DefaultDelay: 5 * time.Minute}},
		store,
		store,
		store.Assessments(),
		balances,
		scorer,
		paymentgw.NewSandboxRail(),
		notifier,
	).(*guardianUC)
	uc.now = func() time.Time { return fixedNow }

	return &fixture{uc: uc, store: store, balances: balances, notifier: notifier}
}

func (f *fixture) withBalance(v int64) {
	f.balances.EXPECT().FetchBalance(gomock.Any(), gomock.Any()).
		Return(&models.Balance{Balance: decimal.NewFromInt(v), Currency: "USDC"}, nil).AnyTimes()
}

func paymentRequest(amount int64, recipient string, confirmed bool) *models.GuardianRequest {
	return &models.GuardianRequest{
		UserID: "user-1",
		Intent: models.IntentMakePayment,
		Entities: models.PaymentIntent{
			Amount:      dec(amount),
			Currency:    "USDC",
			RecipientID: recipient,
			Confirmed:   confirmed,
		},
	}
}

func TestEvaluate_ConfirmThenApprove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(100)
	ctx := context.Background()

	first, err := f.uc.Evaluate(ctx, paymentRequest(50, "alice", false))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionAwaitingConfirmation, first.Decision)
	assert.Equal(t, "Confirm payment of 50 USDC to Alice (id alice).", first.Reason)
	assert.Empty(t, first.PaymentID)

	second, err := f.uc.Evaluate(ctx, paymentRequest(50, "alice", false))
	require.NoError(t, err)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.RiskScore, second.RiskScore)

	payments, err := f.store.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, payments)

	approved, err := f.uc.Evaluate(ctx, paymentRequest(50, "alice", true))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionApprove, approved.Decision)
	assert.Equal(t, "Payment scheduled", approved.Reason)
	assert.Equal(t, first.RiskScore, approved.RiskScore)
	assert.Regexp(t, `^pay-[0-9a-f]{8}$`, approved.PaymentID)

	stored, err := f.store.Get(ctx, approved.PaymentID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, stored.Status)
	assert.Equal(t, "alice", stored.RecipientID)
	assert.Equal(t, "0xalice", stored.RecipientAddress)
	require.NotNil(t, stored.ScheduledTimestamp)
	assert.Equal(t, fixedNow.Add(5*time.Minute), *stored.ScheduledTimestamp)

	assessments, err := f.store.ListAssessments(ctx)
	require.NoError(t, err)
	require.Len(t, assessments, 3)
	last := assessments[2]
	assert.True(t, last.Confirmed)
	assert.Equal(t, approved.PaymentID, last.PaymentID)
	assert.Equal(t, models.VerificationVerified, last.Verification.Status)
	assert.False(t, last.Features.IsNewRecipient)
	assert.Equal(t, 1, last.Features.FrequencyWeight)
	assert.True(t, decimal.NewFromInt(2).Equal(last.Features.BalanceRatio))
}

func TestEvaluate_RecurringScheduleStartsAtNextRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(100)

	req := paymentRequest(10, "bob", true)
	req.Entities.Schedule = &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 5}

	decision, err := f.uc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, models.DecisionApprove, decision.Decision)
	require.NotNil(t, decision.Payment)
	assert.Equal(t, fixedNow.Add(5*time.Second), *decision.Payment.ScheduledTimestamp)
	assert.Equal(t, int64(5), decision.Payment.Conditions.IntervalSeconds)
}

func TestEvaluate_ExplicitTimestampWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(100)

	at := fixedNow.Add(48 * time.Hour)
	req := paymentRequest(10, "bob", true)
	req.Entities.ScheduledTimestamp = &at
	req.Entities.PaymentID = "pay-fixed"

	decision, err := f.uc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pay-fixed", decision.PaymentID)
	assert.Equal(t, at, *decision.Payment.ScheduledTimestamp)

	again, err := f.uc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pay-fixed", again.PaymentID)

	payments, err := f.store.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestEvaluate_ReconfirmAfterExecutionIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(100)
	ctx := context.Background()

	req := paymentRequest(10, "bob", true)
	req.Entities.PaymentID = "pay-done"
	_, err := f.uc.Evaluate(ctx, req)
	require.NoError(t, err)
	_, err = f.store.UpdateStatus(ctx, "pay-done", models.PaymentStatusExecuted, models.PaymentUpdate{})
	require.NoError(t, err)

	_, err = f.uc.Evaluate(ctx, req)
	assert.ErrorIs(t, err, models.ErrIllegalTransition)
}

func TestEvaluate_InsufficientBalanceAtApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(50)

	decision, err := f.uc.Evaluate(context.Background(), paymentRequest(200, "alice", true))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionDeny, decision.Decision)
	assert.Equal(t, "Insufficient balance at approval time", decision.Reason)
	assert.Empty(t, decision.PaymentID)

	payments, err := f.store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestEvaluate_BalanceErrorCountsAsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.balances.EXPECT().FetchBalance(gomock.Any(), gomock.Any()).Return(nil, models.ErrNoLinkedAccount)

	decision, err := f.uc.Evaluate(context.Background(), paymentRequest(20, "alice", true))
	require.NoError(t, err)
	assert.Equal(t, models.DecisionDeny, decision.Decision)
	assert.Equal(t, "Insufficient balance at approval time", decision.Reason)
}

func TestEvaluate_ModelDecisions(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		decision models.Decision
		reason   string
		flagged  bool
	}{
		{"low risk approves", 100, models.DecisionApprove, "Payment scheduled", false},
		{"mid risk flags", 350, models.DecisionFlagForReview, "Manual review required", true},
		{"high risk denies", 450, models.DecisionDeny, "Risk too high", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, ctrl, nil)
			f.withBalance(1000)
			if tt.flagged {
				f.notifier.EXPECT().NotifyAdmin(gomock.Any(), "Payment flagged", gomock.Any()).Return(nil)
			}

			decision, err := f.uc.Evaluate(context.Background(), paymentRequest(tt.amount, "alice", true))
			require.NoError(t, err)
			assert.Equal(t, tt.decision, decision.Decision)
			assert.Equal(t, tt.reason, decision.Reason)
		})
	}
}

func TestEvaluate_ScorerFailures(t *testing.T) {
	tests := []struct {
		name   string
		score  *models.RiskScore
		err    error
		expect float64
	}{
		{"scorer error", nil, errors.New("model down"), 1.0},
		{"unknown decision", &models.RiskScore{RiskScore: 0.3, Decision: "MAYBE"}, nil, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scorer := mocks.NewMockRiskScorer(ctrl)
			scorer.EXPECT().ScoreRisk(gomock.Any(), gomock.Any()).Return(tt.score, tt.err)

			f := newFixture(t, ctrl, scorer)
			f.withBalance(100)
			f.notifier.EXPECT().NotifyAdmin(gomock.Any(), "Payment flagged", gomock.Any()).Return(nil)

			decision, err := f.uc.Evaluate(context.Background(), paymentRequest(10, "alice", true))
			require.NoError(t, err)
			assert.Equal(t, models.DecisionFlagForReview, decision.Decision)
			assert.Equal(t, tt.expect, decision.RiskScore)

			assessments, err := f.store.ListAssessments(context.Background())
			require.NoError(t, err)
			require.Len(t, assessments, 1)
			assert.Equal(t, models.DecisionFlagForReview, assessments[0].Model.Decision)
		})
	}
}

func TestEvaluate_NewRecipientIsSynthesized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scorer := mocks.NewMockRiskScorer(ctrl)
	scorer.EXPECT().
		ScoreRisk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc models.RiskContext) (*models.RiskScore, error) {
			assert.Equal(t, "unknown", rc.Recipient.RecipientID)
			assert.Equal(t, "Carol", rc.Recipient.Name)
			assert.True(t, rc.Features.IsNewRecipient)
			assert.Equal(t, 3, rc.Features.FrequencyWeight)
			return &models.RiskScore{RiskScore: 0.2, Decision: models.DecisionApprove}, nil
		})

	f := newFixture(t, ctrl, scorer)
	f.withBalance(100)

	req := &models.GuardianRequest{
		UserID: "user-1",
		Intent: models.IntentSchedulePayment,
		Entities: models.PaymentIntent{
			Amount:        dec(10),
			RecipientName: "Carol",
			Schedule:      &models.Schedule{Recurring: true, Frequency: models.FrequencyInterval, IntervalSeconds: 86400},
		},
	}
	decision, err := f.uc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionAwaitingConfirmation, decision.Decision)
	assert.Equal(t, "Confirm payment of 10 USDC to Carol (id unknown).", decision.Reason)

	assessments, err := f.store.ListAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, models.VerificationUnknown, assessments[0].Verification.Status)
}

func TestEvaluate_UnverifiedAddressIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, nil)
	f.withBalance(100)

	req := paymentRequest(10, "", false)
	req.Entities.RecipientAddress = "not-a-wallet"

	_, err := f.uc.Evaluate(context.Background(), req)
	require.NoError(t, err)

	assessments, err := f.store.ListAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, models.VerificationUnverified, assessments[0].Verification.Status)
	assert.NotEmpty(t, assessments[0].Verification.Details)
}

func TestEvaluate_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.GuardianRequest
		err  error
	}{
		{
			name: "unknown user",
			req:  &models.GuardianRequest{UserID: "ghost", Entities: models.PaymentIntent{Amount: dec(10)}},
			err:  models.ErrUnknownUser,
		},
		{
			name: "missing amount",
			req:  &models.GuardianRequest{UserID: "user-1"},
			err:  models.ErrMissingAmount,
		},
		{
			name: "zero amount",
			req:  &models.GuardianRequest{UserID: "user-1", Entities: models.PaymentIntent{Amount: dec(0)}},
			err:  models.ErrInvalidAmount,
		},
		{
			name: "negative amount",
			req:  &models.GuardianRequest{UserID: "user-2", Entities: models.PaymentIntent{Amount: dec(-5)}},
			err:  models.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(t, ctrl, nil)
			_, err := f.uc.Evaluate(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
