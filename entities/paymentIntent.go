package entities

import "encoding/json"

const PaymentIntentSucceeded = "succeeded"

// PaymentIntent is the slice of the processor's payment intent this service reads.
type PaymentIntent struct {
	ID               string
	Status           string
	Amount           int64
	Currency         string
	LastPaymentError *PaymentError
	LatestCharge     *Charge
}

type PaymentError struct {
	Code        string `json:"code"`
	DeclineCode string `json:"decline_code"`
	Message     string `json:"message"`
	Type        string `json:"type"`
}

type Charge struct {
	ID             string
	Status         string
	FailureCode    string
	FailureMessage string
	Outcome        *ChargeOutcome
}

type ChargeOutcome struct {
	Type          string `json:"type"`
	Reason        string `json:"reason"`
	SellerMessage string `json:"seller_message"`
	NetworkStatus string `json:"network_status"`
}

// EffectiveStatus is "succeeded" when either the intent or its latest charge succeeded.
// The intent status can lag behind the charge for a short while after capture.
func (pi PaymentIntent) EffectiveStatus() string {
	if pi.Status == PaymentIntentSucceeded {
		return PaymentIntentSucceeded
	}
	if pi.LatestCharge != nil && pi.LatestCharge.Status == PaymentIntentSucceeded {
		return PaymentIntentSucceeded
	}
	return pi.Status
}

// Reader is a card reader as returned by the processor. Raw holds the processor's
// response untouched so it can be relayed to the caller verbatim.
type Reader struct {
	ID  string
	Raw json.RawMessage
}
