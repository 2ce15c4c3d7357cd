package payments

import (
	"ohppos.io/entities"
	stripe_payment_processor "ohppos.io/infrastructure/payments/stripe"
	payment_types "ohppos.io/infrastructure/payments/types"
)

// InitialisePaymentProcessor builds the processor client for the resolved credentials.
func InitialisePaymentProcessor(credentials entities.Credentials) payment_types.PaymentProcessor {
	return stripe_payment_processor.New(credentials.SecretKey, nil)
}
