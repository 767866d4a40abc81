package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/intent/gateway"
	"github.com/piresc/arcpay/services/intent/mocks"
	paymentmocks "github.com/piresc/arcpay/services/payment/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func whitelistUser() *models.User {
	return &models.User{
		UserID: "user-1",
		Name:   "Dana",
		WhitelistedRecipients: models.RecipientList{
			{RecipientID: "alice", Name: "Alice", Address: "0xalice", Currency: "USDC"},
			{RecipientID: "bob-01", Name: "Bob", Address: "0xbob", Currency: "EURC"},
		},
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewIntentUC(&models.Config{}, mocks.NewMockIntentModel(ctrl), paymentmocks.NewMockUserRepo(ctrl))

	_, err := uc.Classify(context.Background(), "user-1", "   ")
	assert.ErrorIs(t, err, models.ErrEmptyInput)
}

func TestClassify_PaymentWithAutofill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := paymentmocks.NewMockUserRepo(ctrl)
	uc := NewIntentUC(&models.Config{}, gateway.NewHeuristicModel(), users)

	users.EXPECT().GetUser(gomock.Any(), "user-1").Return(whitelistUser(), nil)

	cmd, err := uc.Classify(context.Background(), "user-1", "Pay 50 to Alice")
	require.NoError(t, err)
	assert.Equal(t, models.IntentMakePayment, cmd.Kind)
	require.NotNil(t, cmd.Payment)
	assert.Nil(t, cmd.Query)
	assert.True(t, decimal.NewFromInt(50).Equal(*cmd.Payment.Amount))
	assert.Equal(t, "alice", cmd.Payment.RecipientID)
	assert.Equal(t, "Alice", cmd.Payment.RecipientName)
	assert.Equal(t, "0xalice", cmd.Payment.RecipientAddress)
	assert.Equal(t, "USDC", cmd.Payment.Currency)
	assert.Nil(t, cmd.Payment.Schedule)
}

func TestClassify_AutofillKeepsModelValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := mocks.NewMockIntentModel(ctrl)
	users := paymentmocks.NewMockUserRepo(ctrl)
	uc := NewIntentUC(&models.Config{}, model, users)

	amount := decimal.NewFromInt(7)
	model.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(&models.Classification{
		Intent:     models.IntentSchedulePayment,
		Confidence: 0.9,
		Entities:   models.ClassifiedEntities{Amount: &amount, Currency: "USDT", RecipientName: "Bobby"},
	}, nil)
	users.EXPECT().GetUser(gomock.Any(), "user-1").Return(whitelistUser(), nil)

	cmd, err := uc.Classify(context.Background(), "user-1", "send 10 to bob every 5 seconds")
	require.NoError(t, err)
	require.NotNil(t, cmd.Payment)
	assert.Equal(t, 0.9, cmd.Confidence)
	assert.True(t, amount.Equal(*cmd.Payment.Amount))
	assert.Equal(t, "bob-01", cmd.Payment.RecipientID)
	assert.Equal(t, "Bobby", cmd.Payment.RecipientName)
	assert.Equal(t, "USDT", cmd.Payment.Currency)
	require.NotNil(t, cmd.Payment.Schedule)
	assert.Equal(t, int64(5), cmd.Payment.Schedule.IntervalSeconds)
	assert.True(t, cmd.Payment.Schedule.Recurring)
}

func TestClassify_UnknownUserStillClassifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := paymentmocks.NewMockUserRepo(ctrl)
	uc := NewIntentUC(&models.Config{}, gateway.NewHeuristicModel(), users)

	users.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, errors.New("db down"))

	cmd, err := uc.Classify(context.Background(), "ghost", "pay 5 usdc to carol every month on the 31")
	require.NoError(t, err)
	require.NotNil(t, cmd.Payment)
	assert.Empty(t, cmd.Payment.RecipientID)
	require.NotNil(t, cmd.Payment.Schedule)
	assert.Equal(t, models.FrequencyMonthly, cmd.Payment.Schedule.Frequency)
	assert.Equal(t, 31, cmd.Payment.Schedule.DayOfMonth)
}

func TestClassify_Routing(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  models.IntentKind
		check func(t *testing.T, cmd *models.Command)
	}{
		{
			name: "analysis by keywords",
			text: "Analyze my last three transactions",
			kind: models.IntentAnalyzeTransactions,
			check: func(t *testing.T, cmd *models.Command) {
				require.NotNil(t, cmd.Analysis)
				assert.Equal(t, 3, cmd.Analysis.Count)
			},
		},
		{
			name: "stock",
			text: "buy tech stocks with 200",
			kind: models.IntentStockPurchase,
			check: func(t *testing.T, cmd *models.Command) {
				require.NotNil(t, cmd.Stock)
				assert.Equal(t, "200", cmd.Stock.Amount.String())
			},
		},
		{
			name: "query",
			text: "what is my balance",
			kind: models.IntentQuery,
			check: func(t *testing.T, cmd *models.Command) {
				require.NotNil(t, cmd.Query)
				assert.Equal(t, "what is my balance", cmd.Query.Question)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := NewIntentUC(&models.Config{}, gateway.NewHeuristicModel(), paymentmocks.NewMockUserRepo(ctrl))
			cmd, err := uc.Classify(context.Background(), "user-1", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Nil(t, cmd.Payment)
			tt.check(t, cmd)
		})
	}
}

func TestClassify_UnknownModelIntentBecomesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := mocks.NewMockIntentModel(ctrl)
	uc := NewIntentUC(&models.Config{}, model, paymentmocks.NewMockUserRepo(ctrl))

	model.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(&models.Classification{Intent: "small_talk"}, nil)

	cmd, err := uc.Classify(context.Background(), "user-1", "hello there")
	require.NoError(t, err)
	assert.Equal(t, models.IntentQuery, cmd.Kind)
	require.NotNil(t, cmd.Query)
}

func TestClassify_ModelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	model := mocks.NewMockIntentModel(ctrl)
	uc := NewIntentUC(&models.Config{}, model, paymentmocks.NewMockUserRepo(ctrl))

	model.EXPECT().Classify(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := uc.Classify(context.Background(), "user-1", "pay alice")
	assert.ErrorContains(t, err, "failed to classify command")
}
