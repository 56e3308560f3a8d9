package services

// PaymentGateway charges the order total during checkout. A returned
// error aborts the checkout transaction; a real integration must make
// Charge idempotent and treat declines and timeouts as recoverable.
type PaymentGateway interface {
	Charge(userID uint, amount int64) error
}

// SimulatedGateway approves every charge. Stands in until a real
// payment provider is wired.
type SimulatedGateway struct{}

func (SimulatedGateway) Charge(userID uint, amount int64) error { return nil }
