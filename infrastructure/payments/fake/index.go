package fake_payment_processor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ohppos.io/entities"
	payment_types "ohppos.io/infrastructure/payments/types"
)

type Call struct {
	Method string
	Ctx    context.Context
	Args   []any
}

// FakePaymentProcessor records every call and answers from its fields. Set an Err field
// to make the matching call fail.
type FakePaymentProcessor struct {
	mu    sync.Mutex
	Calls []Call

	Intent          *entities.PaymentIntent
	ConnectionToken string

	CreateIntentErr   error
	GetIntentErr      error
	ConnectionErr     error
	RegisterReaderErr error
	ProcessErr        error
	PresentCardErr    error

	readers int
}

func (f *FakePaymentProcessor) record(ctx context.Context, method string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, Call{Method: method, Ctx: ctx, Args: args})
}

// CallsTo returns the recorded calls of one method.
func (f *FakePaymentProcessor) CallsTo(method string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := []Call{}
	for _, call := range f.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

func (f *FakePaymentProcessor) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *FakePaymentProcessor) CreatePaymentIntent(ctx context.Context, params payment_types.CreatePaymentIntentParams) (*entities.PaymentIntent, error) {
	f.record(ctx, "CreatePaymentIntent", params)
	if f.CreateIntentErr != nil {
		return nil, f.CreateIntentErr
	}
	return &entities.PaymentIntent{
		ID:       "pi_fake_123",
		Status:   "requires_payment_method",
		Amount:   params.Amount,
		Currency: params.Currency,
	}, nil
}

func (f *FakePaymentProcessor) GetPaymentIntent(ctx context.Context, id string) (*entities.PaymentIntent, error) {
	f.record(ctx, "GetPaymentIntent", id)
	if f.GetIntentErr != nil {
		return nil, f.GetIntentErr
	}
	if f.Intent != nil {
		return f.Intent, nil
	}
	return &entities.PaymentIntent{ID: id, Status: "requires_payment_method"}, nil
}

func (f *FakePaymentProcessor) CreateConnectionToken(ctx context.Context, locationID string) (string, error) {
	f.record(ctx, "CreateConnectionToken", locationID)
	if f.ConnectionErr != nil {
		return "", f.ConnectionErr
	}
	if f.ConnectionToken != "" {
		return f.ConnectionToken, nil
	}
	return "pst_test_secret", nil
}

func (f *FakePaymentProcessor) RegisterSimulatedReader(ctx context.Context, params payment_types.RegisterReaderParams) (*entities.Reader, error) {
	f.record(ctx, "RegisterSimulatedReader", params)
	if f.RegisterReaderErr != nil {
		return nil, f.RegisterReaderErr
	}
	f.mu.Lock()
	f.readers++
	id := fmt.Sprintf("tmr_sim_%d", f.readers)
	f.mu.Unlock()
	return &entities.Reader{ID: id}, nil
}

func (f *FakePaymentProcessor) ProcessPaymentIntent(ctx context.Context, readerID string, paymentIntentID string, idempotencyKey string) (*entities.Reader, error) {
	f.record(ctx, "ProcessPaymentIntent", readerID, paymentIntentID, idempotencyKey)
	if f.ProcessErr != nil {
		return nil, f.ProcessErr
	}
	raw, _ := json.Marshal(map[string]any{
		"id":     readerID,
		"object": "terminal.reader",
		"action": map[string]any{
			"type":   "process_payment_intent",
			"status": "in_progress",
			"process_payment_intent": map[string]any{
				"payment_intent": paymentIntentID,
			},
		},
	})
	return &entities.Reader{ID: readerID, Raw: raw}, nil
}

func (f *FakePaymentProcessor) PresentCard(ctx context.Context, readerID string, cardNumber string) error {
	f.record(ctx, "PresentCard", readerID, cardNumber)
	return f.PresentCardErr
}
