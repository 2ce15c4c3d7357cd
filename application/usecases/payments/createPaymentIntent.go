package payments

import (
	"context"
	"strings"

	"ohppos.io/application/utils"
	payment_types "ohppos.io/infrastructure/payments/types"
)

type CreatePaymentIntentInput struct {
	Amount      *int64
	Currency    string
	Category    string
	Description string
	ArtNumber   string
	// AuthenticatedKey is the credential that admitted the request.
	AuthenticatedKey string
}

type CreatedPaymentIntent struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreatePaymentIntent opens a card-present, automatically captured intent.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*CreatedPaymentIntent, error) {
	currency := strings.TrimSpace(input.Currency)
	if input.Amount == nil || *input.Amount <= 0 || currency == "" {
		return nil, ErrMissingPaymentFields
	}

	metadata := map[string]string{}
	if input.AuthenticatedKey != "" {
		metadata["device"] = utils.RedactSecret(input.AuthenticatedKey)
	}
	if artNumber := strings.TrimSpace(input.ArtNumber); artNumber != "" {
		metadata["art_number"] = artNumber
	}
	if category := strings.TrimSpace(input.Category); category != "" {
		metadata["pos_category"] = category
	}

	intent, err := s.Processor.CreatePaymentIntent(ctx, payment_types.CreatePaymentIntentParams{
		Amount:                    *input.Amount,
		Currency:                  strings.ToLower(currency),
		Description:               Description(input.Description, input.Category),
		StatementDescriptorSuffix: StatementDescriptorSuffix(input.Category),
		Metadata:                  metadata,
	})
	if err != nil {
		return nil, err
	}
	return &CreatedPaymentIntent{
		ID:     intent.ID,
		Status: intent.Status,
	}, nil
}
