package payments

import (
	"context"
	"strings"

	"ohppos.io/entities"
)

// PaymentIntentStatus is the flattened view POS clients poll.
type PaymentIntentStatus struct {
	ID                         string                  `json:"id"`
	Status                     string                  `json:"status"`
	EffectiveStatus            string                  `json:"effective_status"`
	Amount                     int64                   `json:"amount"`
	Currency                   string                  `json:"currency"`
	LastPaymentError           *entities.PaymentError  `json:"last_payment_error"`
	LatestChargeID             string                  `json:"latest_charge_id,omitempty"`
	LatestChargeStatus         string                  `json:"latest_charge_status,omitempty"`
	LatestChargeFailureCode    string                  `json:"latest_charge_failure_code,omitempty"`
	LatestChargeFailureMessage string                  `json:"latest_charge_failure_message,omitempty"`
	LatestChargeOutcome        *entities.ChargeOutcome `json:"latest_charge_outcome"`
}

func FlattenPaymentIntent(intent *entities.PaymentIntent) *PaymentIntentStatus {
	status := &PaymentIntentStatus{
		ID:               intent.ID,
		Status:           intent.Status,
		EffectiveStatus:  intent.EffectiveStatus(),
		Amount:           intent.Amount,
		Currency:         intent.Currency,
		LastPaymentError: intent.LastPaymentError,
	}
	if charge := intent.LatestCharge; charge != nil {
		status.LatestChargeID = charge.ID
		status.LatestChargeStatus = charge.Status
		status.LatestChargeFailureCode = charge.FailureCode
		status.LatestChargeFailureMessage = charge.FailureMessage
		status.LatestChargeOutcome = charge.Outcome
	}
	return status
}

func (s *PaymentService) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntentStatus, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingPaymentIntent
	}
	intent, err := s.Processor.GetPaymentIntent(ctx, id)
	if err != nil {
		return nil, err
	}
	return FlattenPaymentIntent(intent), nil
}
