package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CreatePaymentIntentDTO struct {
	Amount      *int64         `json:"amount" validate:"required,gt=0"`
	Currency    string         `json:"currency" validate:"required,currency_code"`
	Category    string         `json:"category" validate:"max=100"`
	Description string         `json:"description" validate:"max=500"`
	ArtNumber   FlexibleString `json:"art_number" validate:"max=100"`
}

type ProcessOnReaderDTO struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required,max=255"`
}

// FlexibleString accepts a JSON string or number; POS clients send art numbers as either.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = FlexibleString(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("art_number must be a string or a number")
	}
	*s = FlexibleString(number.String())
	return nil
}
