package constants

// Redis key formats
const (
	// KeyPaymentLease holds the claim on a payment while a tick processes it
	KeyPaymentLease = "arcpay:payment:lease:%s"
	// KeyBalanceCache is a hash of currency to last-seen balance for one user
	KeyBalanceCache = "arcpay:balance:%s"
)
