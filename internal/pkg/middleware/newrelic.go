package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	appctx "github.com/piresc/arcpay/internal/pkg/context"
)

const contextKeyTransaction = "nr_txn"

// NewRelicMiddleware starts a web transaction per request and stores it on the request context.
// A nil app makes it a pass-through.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if app == nil {
			return next
		}
		return func(c echo.Context) error {
			req := c.Request()
			txn := app.StartTransaction(req.Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(req)
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))
			c.Set(contextKeyTransaction, txn)

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// Transaction returns the New Relic transaction of c, or nil
func Transaction(c echo.Context) *newrelic.Transaction {
	if txn, ok := c.Get(contextKeyTransaction).(*newrelic.Transaction); ok {
		return txn
	}
	return newrelic.FromContext(c.Request().Context())
}

// SetUserID sets the user id attribute for the current transaction and stores it on the request context
func SetUserID(c echo.Context, userID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(appctx.WithUserID(req.Context(), userID)))
	if txn := Transaction(c); txn != nil {
		txn.AddAttribute("user.id", userID)
	}
}

// SetPaymentID sets the payment id attribute for the current transaction
func SetPaymentID(c echo.Context, paymentID string) {
	if txn := Transaction(c); txn != nil {
		txn.AddAttribute("payment.id", paymentID)
	}
}
