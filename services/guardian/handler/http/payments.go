package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/arcpay/internal/pkg/middleware"
	"github.com/piresc/arcpay/internal/pkg/models"
	"github.com/piresc/arcpay/internal/utils"
	"github.com/piresc/arcpay/services/payment"
)

// PaymentHandler exposes read access to scheduled payments
type PaymentHandler struct {
	payments payment.PaymentRepo
}

// NewPaymentHandler creates the payment handler
func NewPaymentHandler(payments payment.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// GetPayment serves GET /v1/payments/:paymentId
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID := c.Param("paymentId")
	if paymentID == "" {
		return utils.BadRequestResponse(c, "paymentId is required")
	}
	middleware.SetPaymentID(c, paymentID)

	p, err := h.payments.Get(c.Request().Context(), paymentID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", p)
}

// ListPayments serves GET /v1/payments?userId=
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return utils.BadRequestResponse(c, "userId is required")
	}
	middleware.SetUserID(c, userID)

	payments, err := h.payments.List(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "", payments)
}
