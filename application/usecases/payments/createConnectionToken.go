package payments

import "context"

// CreateConnectionToken issues a fresh reader connection secret scoped to the active location.
func (s *PaymentService) CreateConnectionToken(ctx context.Context) (string, error) {
	return s.Processor.CreateConnectionToken(ctx, s.Settings.LocationID)
}
