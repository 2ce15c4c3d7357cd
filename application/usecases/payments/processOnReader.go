package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"ohppos.io/application/constants"
	"ohppos.io/entities"
	"ohppos.io/infrastructure/logger"
	payment_types "ohppos.io/infrastructure/payments/types"
)

// SimulationOutcome reports the best-effort test card presentation.
type SimulationOutcome struct {
	Attempted bool
	Err       error
}

func (o SimulationOutcome) Failed() bool {
	return o.Attempted && o.Err != nil
}

// ReaderProcessing is the result of handing an intent to a reader. A failed card
// simulation does not make the processing itself fail.
type ReaderProcessing struct {
	Reader     *entities.Reader
	Simulation SimulationOutcome
}

// ProcessIdempotencyKey is the processor idempotency key used to process an intent,
// so retries for the same intent never run twice at the processor.
func ProcessIdempotencyKey(paymentIntentID string) string {
	return fmt.Sprintf("%s-%s", constants.PROCESS_IDEMPOTENCY_PREFIX, paymentIntentID)
}

// ProcessOnReader asks a reader to collect payment for an intent. Production uses the
// configured physical reader; test mode registers a new simulated reader on every call.
func (s *PaymentService) ProcessOnReader(ctx context.Context, paymentIntentID string) (*ReaderProcessing, error) {
	paymentIntentID = strings.TrimSpace(paymentIntentID)
	if paymentIntentID == "" {
		return nil, ErrMissingPaymentIntent
	}

	readerID, err := s.resolveReader(ctx)
	if err != nil {
		return nil, err
	}

	reader, err := s.Processor.ProcessPaymentIntent(ctx, readerID, paymentIntentID, ProcessIdempotencyKey(paymentIntentID))
	if err != nil {
		return nil, err
	}

	result := &ReaderProcessing{Reader: reader}
	if !s.Settings.Mode.IsProduction() && s.Settings.SimulateCard {
		result.Simulation.Attempted = true
		result.Simulation.Err = s.Processor.PresentCard(ctx, readerID, s.Settings.SimulatedCardNumber)
		if result.Simulation.Err != nil {
			logger.Warning("test card presentation failed", logger.LoggerOptions{
				Key:  "reader",
				Data: readerID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: result.Simulation.Err.Error(),
			})
		}
	}
	return result, nil
}

func (s *PaymentService) resolveReader(ctx context.Context) (string, error) {
	if s.Settings.Mode.IsProduction() {
		if s.Settings.TerminalID == "" {
			return "", ErrReaderNotConfigured
		}
		return s.Settings.TerminalID, nil
	}

	reader, err := s.Processor.RegisterSimulatedReader(ctx, payment_types.RegisterReaderParams{
		LocationID:       s.Settings.LocationID,
		RegistrationCode: constants.SIMULATED_READER_REGISTRATION_CODE,
		Label:            fmt.Sprintf("%s %s", constants.SIMULATED_READER_LABEL_PREFIX, uuid.NewString()[:8]),
	})
	if err != nil {
		return "", err
	}
	logger.Info("registered simulated reader", logger.LoggerOptions{
		Key:  "reader",
		Data: reader.ID,
	})
	return reader.ID, nil
}
