package stripe_payment_processor

import (
	"encoding/json"

	"github.com/stripe/stripe-go/v76"
	"ohppos.io/entities"
)

func toPaymentIntent(intent *stripe.PaymentIntent) *entities.PaymentIntent {
	result := &entities.PaymentIntent{
		ID:       intent.ID,
		Status:   string(intent.Status),
		Amount:   intent.Amount,
		Currency: string(intent.Currency),
	}
	if intent.LastPaymentError != nil {
		result.LastPaymentError = &entities.PaymentError{
			Code:        string(intent.LastPaymentError.Code),
			DeclineCode: string(intent.LastPaymentError.DeclineCode),
			Message:     intent.LastPaymentError.Msg,
			Type:        string(intent.LastPaymentError.Type),
		}
	}
	if charge := intent.LatestCharge; charge != nil {
		result.LatestCharge = &entities.Charge{
			ID:             charge.ID,
			Status:         string(charge.Status),
			FailureCode:    charge.FailureCode,
			FailureMessage: charge.FailureMessage,
		}
		if charge.Outcome != nil {
			result.LatestCharge.Outcome = &entities.ChargeOutcome{
				Type:          charge.Outcome.Type,
				Reason:        charge.Outcome.Reason,
				SellerMessage: charge.Outcome.SellerMessage,
				NetworkStatus: charge.Outcome.NetworkStatus,
			}
		}
	}
	return result
}

func toReader(reader *stripe.TerminalReader) *entities.Reader {
	result := &entities.Reader{ID: reader.ID}
	if reader.LastResponse != nil && len(reader.LastResponse.RawJSON) > 0 {
		result.Raw = json.RawMessage(reader.LastResponse.RawJSON)
		return result
	}
	raw, err := json.Marshal(reader)
	if err == nil {
		result.Raw = raw
	}
	return result
}
