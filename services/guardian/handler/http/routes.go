package http

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the command and payment endpoints on g
func RegisterRoutes(g *echo.Group, commands *CommandHandler, payments *PaymentHandler) {
	g.POST("/commands", commands.HandleCommand)

	paymentsGroup := g.Group("/payments")
	paymentsGroup.GET("", payments.ListPayments)
	paymentsGroup.GET("/:paymentId", payments.GetPayment)
}
