package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/piresc/arcpay/internal/pkg/http"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRail(url string) *HTTPRail {
	return NewHTTPRail(models.PaymentAPIConfig{
		BaseURL:    url,
		APIKey:     "secret",
		Timeout:    time.Second,
		MaxRetries: 0,
	}, nil, logger.NewNopLogger())
}

func TestHTTPRail_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "pay-1:2024-03-01T12:00:00Z", r.Header.Get(httpclient.IdempotencyKeyHeader))

		var req models.ExecutionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Recipient.RecipientID)
		assert.Equal(t, "pay-1", req.Metadata.PaymentID)
		assert.True(t, decimal.NewFromInt(50).Equal(req.Amount))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"transactionId":"txn_42","status":"submitted"}`))
	}))
	defer server.Close()

	resp, err := newTestRail(server.URL).Execute(context.Background(), models.ExecutionRequest{
		Amount:         decimal.NewFromInt(50),
		Currency:       "USDC",
		Recipient:      models.ExecutionRecipient{RecipientID: "alice", Address: "0xabc"},
		Metadata:       models.ExecutionMetadata{PaymentID: "pay-1"},
		IdempotencyKey: "pay-1:2024-03-01T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "txn_42", resp.TransactionID)
}

func TestHTTPRail_ExecuteRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"insufficient funds"}`))
	}))
	defer server.Close()

	_, err := newTestRail(server.URL).Execute(context.Background(), models.ExecutionRequest{
		Metadata: models.ExecutionMetadata{PaymentID: "pay-1"},
	})
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
}

func TestHTTPRail_ExecuteMissingTransactionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"submitted"}`))
	}))
	defer server.Close()

	_, err := newTestRail(server.URL).Execute(context.Background(), models.ExecutionRequest{})
	assert.EqualError(t, err, "payment api returned no transaction id")
}

func TestHTTPRail_VerifyRecipient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipients/verify", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"verified"}`))
	}))
	defer server.Close()

	res, err := newTestRail(server.URL).VerifyRecipient(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, res.Status)
}

func TestHTTPRail_FetchBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallets/w-1/balance", r.URL.Path)
		assert.Equal(t, "USDC", r.URL.Query().Get("currency"))
		_, _ = w.Write([]byte(`{"balance":"120.5"}`))
	}))
	defer server.Close()

	bal, err := newTestRail(server.URL).FetchBalance(context.Background(), models.LinkedAccount{WalletID: "w-1", Currency: "USDC"})
	require.NoError(t, err)
	assert.Equal(t, "120.5", bal.Balance.String())
	assert.Equal(t, "USDC", bal.Currency)
}
