package payment_types

import (
	"context"

	"ohppos.io/entities"
)

// PaymentProcessor is the slice of the card processor's API the POS backend drives.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*entities.PaymentIntent, error)
	// GetPaymentIntent retrieves the intent with its latest charge expanded.
	GetPaymentIntent(ctx context.Context, id string) (*entities.PaymentIntent, error)
	CreateConnectionToken(ctx context.Context, locationID string) (string, error)
	RegisterSimulatedReader(ctx context.Context, params RegisterReaderParams) (*entities.Reader, error)
	ProcessPaymentIntent(ctx context.Context, readerID string, paymentIntentID string, idempotencyKey string) (*entities.Reader, error)
	PresentCard(ctx context.Context, readerID string, cardNumber string) error
}

type CreatePaymentIntentParams struct {
	Amount                    int64
	Currency                  string
	Description               string
	StatementDescriptorSuffix string
	Metadata                  map[string]string
}

type RegisterReaderParams struct {
	LocationID       string
	RegistrationCode string
	Label            string
}

// ProcessorError is a failure reported by the processor. Message is the processor's own
// text and is what the caller gets to see.
type ProcessorError struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e *ProcessorError) Error() string {
	return e.Message
}

func (e *ProcessorError) Unwrap() error {
	return e.Err
}
