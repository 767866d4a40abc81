package constants

// NATS subjects published by the service
const (
	SubjectNotificationUser  = "arcpay.notification.user"
	SubjectNotificationAdmin = "arcpay.notification.admin"
	SubjectPaymentExecuted   = "arcpay.payment.executed"
	SubjectPaymentFailed     = "arcpay.payment.failed"
	SubjectPaymentScheduled  = "arcpay.payment.scheduled"
)
