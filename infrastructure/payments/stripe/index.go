package stripe_payment_processor

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"ohppos.io/entities"
	"ohppos.io/infrastructure/logger"
	payment_types "ohppos.io/infrastructure/payments/types"
)

type StripePaymentProcessor struct {
	API *client.API
}

func New(secretKey string, backends *stripe.Backends) *StripePaymentProcessor {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripePaymentProcessor{API: api}
}

func (sp *StripePaymentProcessor) CreatePaymentIntent(ctx context.Context, params payment_types.CreatePaymentIntentParams) (*entities.PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:                    stripe.Int64(params.Amount),
		Currency:                  stripe.String(strings.ToLower(params.Currency)),
		PaymentMethodTypes:        stripe.StringSlice([]string{"card_present"}),
		CaptureMethod:             stripe.String(string(stripe.PaymentIntentCaptureMethodAutomatic)),
		Description:               stripe.String(params.Description),
		StatementDescriptorSuffix: stripe.String(params.StatementDescriptorSuffix),
	}
	intentParams.Context = ctx
	for key, value := range params.Metadata {
		intentParams.AddMetadata(key, value)
	}
	intent, err := sp.API.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, wrapError("create payment intent", err)
	}
	return toPaymentIntent(intent), nil
}

func (sp *StripePaymentProcessor) GetPaymentIntent(ctx context.Context, id string) (*entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")
	intent, err := sp.API.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, wrapError("retrieve payment intent", err)
	}
	return toPaymentIntent(intent), nil
}

func (sp *StripePaymentProcessor) CreateConnectionToken(ctx context.Context, locationID string) (string, error) {
	params := &stripe.TerminalConnectionTokenParams{}
	params.Context = ctx
	if locationID != "" {
		params.Location = stripe.String(locationID)
	}
	token, err := sp.API.TerminalConnectionTokens.New(params)
	if err != nil {
		return "", wrapError("create connection token", err)
	}
	return token.Secret, nil
}

func (sp *StripePaymentProcessor) RegisterSimulatedReader(ctx context.Context, params payment_types.RegisterReaderParams) (*entities.Reader, error) {
	readerParams := &stripe.TerminalReaderParams{
		RegistrationCode: stripe.String(params.RegistrationCode),
		Label:            stripe.String(params.Label),
	}
	readerParams.Context = ctx
	if params.LocationID != "" {
		readerParams.Location = stripe.String(params.LocationID)
	}
	reader, err := sp.API.TerminalReaders.New(readerParams)
	if err != nil {
		return nil, wrapError("register simulated reader", err)
	}
	return toReader(reader), nil
}

func (sp *StripePaymentProcessor) ProcessPaymentIntent(ctx context.Context, readerID string, paymentIntentID string, idempotencyKey string) (*entities.Reader, error) {
	params := &stripe.TerminalReaderProcessPaymentIntentParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.SetIdempotencyKey(idempotencyKey)
	reader, err := sp.API.TerminalReaders.ProcessPaymentIntent(readerID, params)
	if err != nil {
		return nil, wrapError("process payment intent", err)
	}
	return toReader(reader), nil
}

func (sp *StripePaymentProcessor) PresentCard(ctx context.Context, readerID string, cardNumber string) error {
	params := &stripe.TestHelpersTerminalReaderPresentPaymentMethodParams{
		Type: stripe.String("card_present"),
		CardPresent: &stripe.TestHelpersTerminalReaderPresentPaymentMethodCardPresentParams{
			Number: stripe.String(cardNumber),
		},
	}
	params.Context = ctx
	_, err := sp.API.TestHelpersTerminalReaders.PresentPaymentMethod(readerID, params)
	if err != nil {
		return wrapError("present payment method", err)
	}
	return nil
}

func wrapError(operation string, err error) error {
	processorErr := &payment_types.ProcessorError{
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		processorErr.Code = string(stripeErr.Code)
		if stripeErr.Msg != "" {
			processorErr.Message = stripeErr.Msg
		}
	}
	logger.Error("stripe call failed", logger.LoggerOptions{
		Key:  "operation",
		Data: operation,
	}, logger.LoggerOptions{
		Key:  "code",
		Data: processorErr.Code,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: processorErr.Message,
	})
	return processorErr
}
