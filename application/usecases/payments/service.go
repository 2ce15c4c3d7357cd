package payments

import (
	"errors"

	"ohppos.io/entities"
	payment_types "ohppos.io/infrastructure/payments/types"
)

var (
	ErrMissingPaymentFields = errors.New("amount and currency are required")
	ErrMissingPaymentIntent = errors.New("payment_intent_id is required")
	ErrReaderNotConfigured  = errors.New("no terminal reader configured for production mode")
)

// Settings is the part of the resolved configuration the payment flows depend on.
type Settings struct {
	Mode                entities.OperatingMode
	LocationID          string
	TerminalID          string
	SimulateCard        bool
	SimulatedCardNumber string
}

// PaymentService translates POS requests into processor calls.
type PaymentService struct {
	Settings  Settings
	Processor payment_types.PaymentProcessor
}

func NewPaymentService(settings Settings, processor payment_types.PaymentProcessor) *PaymentService {
	return &PaymentService{
		Settings:  settings,
		Processor: processor,
	}
}
