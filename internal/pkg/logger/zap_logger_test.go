package logger

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/arcpay/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcpay.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "arcpay-test"}, nil)
	require.NoError(t, err)

	l.Info("payment scheduled", String("payment_id", "pay-1"), Int("attempts", 0))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"payment scheduled"`)
	assert.Contains(t, out, `"payment_id":"pay-1"`)
	assert.Contains(t, out, `"service":"arcpay-test"`)
}

func TestNewZapLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcpay.log")

	l, err := NewZapLogger(ZapConfig{Level: "loud", FilePath: path}, nil)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("visible")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.True(t, strings.Contains(string(data), "visible"))
}

func TestGlobalLoggerDefault(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())

	nop := NewNopLogger()
	SetGlobalLogger(nop)
	assert.Same(t, nop, GetGlobalLogger())

	Info("noop")
	Warn("noop")
	Error("noop", Err(errors.New("boom")))
}

func TestCtxHelpersAddRequestValues(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(&buf), zapcore.DebugLevel)
	SetGlobalLogger(&ZapLogger{Logger: zap.New(core)})
	defer SetGlobalLogger(NewNopLogger())

	ctx := appctx.WithUserID(appctx.WithRequestID(context.Background(), "req-9"), "user-1")
	InfoCtx(ctx, "with values")
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	assert.Contains(t, buf.String(), `"user_id":"user-1"`)

	buf.Reset()
	WarnCtx(context.Background(), "without values")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Contains(t, buf.String(), "without values")
}

func TestZapEchoMiddleware(t *testing.T) {
	e := echo.New()
	mw := ZapEchoMiddleware(NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1?verbose=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
