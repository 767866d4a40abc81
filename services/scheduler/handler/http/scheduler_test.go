package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/services/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerHandler_Tick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSchedulerUC(ctrl)
	h := NewSchedulerHandler(uc)
	e := echo.New()

	uc.EXPECT().Tick(gomock.Any()).Return([]models.TickResult{
		{PaymentID: "pay-1", Result: models.ExecutionResult{Success: true, TransactionID: "txn-1", Status: "submitted"}},
	}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/v1/scheduler/tick", nil), rec)
	require.NoError(t, h.Tick(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.TickResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "txn-1", body.Data[0].Result.TransactionID)
}

func TestSchedulerHandler_TickError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockSchedulerUC(ctrl)
	h := NewSchedulerHandler(uc)

	uc.EXPECT().Tick(gomock.Any()).Return(nil, errors.New("failed to list payments: db down"))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/v1/scheduler/tick", nil), rec)
	require.NoError(t, h.Tick(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestSchedulerHandler_RegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	NewSchedulerHandler(mocks.NewMockSchedulerUC(ctrl)).RegisterRoutes(e.Group("/v1"))

	require.Len(t, e.Routes(), 1)
	assert.Equal(t, "/v1/scheduler/tick", e.Routes()[0].Path)
	assert.Equal(t, http.MethodPost, e.Routes()[0].Method)
}
