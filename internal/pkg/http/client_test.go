package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/arcpay/internal/pkg/circuitbreaker"
	"github.com/piresc/arcpay/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	Value string `json:"value"`
}

func newTestClient(url string, retries int) *Client {
	return NewClient(ClientConfig{
		Name:       "test-api",
		BaseURL:    url + "/",
		BearerKey:  "secret",
		Timeout:    time.Second,
		MaxRetries: retries,
	}, circuitbreaker.NewManager(logger.NewNopLogger()), logger.NewNopLogger())
}

func TestClient_PostJSONIdempotent(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/transfers", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "pay-1", r.Header.Get(IdempotencyKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echoBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(echoBody{Value: in.Value + "!"})
	}))
	defer srv.Close()

	var out echoBody
	err := newTestClient(srv.URL, 0).PostJSONIdempotent(context.Background(), "/transfers", "pay-1", echoBody{Value: "hi"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(nethttp.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(echoBody{Value: "ok"})
	}))
	defer srv.Close()

	var out echoBody
	err := newTestClient(srv.URL, 2).GetJSON(context.Background(), "/status", &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(nethttp.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid address"}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL, 3).GetJSON(context.Background(), "/verify", nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Contains(t, httpErr.Error(), "invalid address")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestClient(url, 0).GetJSON(context.Background(), "/status", nil)

	assert.ErrorContains(t, err, "test-api request failed")
}
