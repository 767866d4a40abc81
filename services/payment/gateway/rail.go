package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/arcpay/internal/pkg/http"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/piresc/arcpay/internal/pkg/models"
)

// HTTPRail talks to the external payment API over JSON/HTTP
type HTTPRail struct {
	client *httpclient.Client
}

// NewHTTPRail creates a rail client for cfg.BaseURL
func NewHTTPRail(cfg models.PaymentAPIConfig, breakers *circuitbreaker.Manager, l *logger.ZapLogger) *HTTPRail {
	return &HTTPRail{
		client: httpclient.NewClient(httpclient.ClientConfig{
			Name:       "payment-api",
			BaseURL:    cfg.BaseURL,
			BearerKey:  cfg.APIKey,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}, breakers, l),
	}
}

// Execute submits a transfer with the per-run idempotency key
func (r *HTTPRail) Execute(ctx context.Context, req models.ExecutionRequest) (*models.ExecutionResponse, error) {
	var resp models.ExecutionResponse
	if err := r.client.PostJSONIdempotent(ctx, "/payments", req.Key(), req, &resp); err != nil {
		return nil, err
	}
	if resp.TransactionID == "" {
		return nil, fmt.Errorf("payment api returned no transaction id")
	}
	return &resp, nil
}

// VerifyRecipient asks the rail whether address can receive funds
func (r *HTTPRail) VerifyRecipient(ctx context.Context, address string) (*models.VerificationResult, error) {
	var resp models.VerificationResult
	body := map[string]string{"address": address}
	if err := r.client.PostJSON(ctx, "/recipients/verify", body, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "" {
		resp.Status = models.VerificationUnverified
	}
	return &resp, nil
}

// FetchBalance reads the balance of a linked wallet
func (r *HTTPRail) FetchBalance(ctx context.Context, account models.LinkedAccount) (*models.Balance, error) {
	endpoint := fmt.Sprintf("/wallets/%s/balance", url.PathEscape(account.WalletID))
	if account.Currency != "" {
		endpoint += "?currency=" + url.QueryEscape(account.Currency)
	}

	var resp models.Balance
	if err := r.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Currency == "" {
		resp.Currency = account.Currency
	}
	return &resp, nil
}
