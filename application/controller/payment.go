package controller

import (
	"errors"
	"net/http"

	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/controller/dto"
	"ohppos.io/application/interfaces"
	"ohppos.io/application/usecases/payments"
	"ohppos.io/infrastructure/logger"
	server_response "ohppos.io/infrastructure/serverResponse"
	"ohppos.io/infrastructure/validator"
)

type PaymentController struct {
	Service *payments.PaymentService
}

func (pc *PaymentController) CreatePaymentIntent(ctx *interfaces.ApplicationContext[dto.CreatePaymentIntentDTO]) {
	if errs := validator.ValidatorInstance.ValidateStruct(ctx.Body); errs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validator.Message(errs))
		return
	}
	authenticatedKey := ctx.GetStringContextData(constants.AUTHENTICATED_KEY_CONTEXT)
	created, err := pc.Service.CreatePaymentIntent(ctx.RequestContext(), payments.CreatePaymentIntentInput{
		Amount:           ctx.Body.Amount,
		Currency:         ctx.Body.Currency,
		Category:         ctx.Body.Category,
		Description:      ctx.Body.Description,
		ArtNumber:        string(ctx.Body.ArtNumber),
		AuthenticatedKey: authenticatedKey,
	})
	if err != nil {
		respondWithPaymentError(ctx.Ctx, "create payment intent", err)
		return
	}
	logger.Info("payment intent created", logger.LoggerOptions{
		Key:  "paymentIntent",
		Data: created.ID,
	}, logger.LoggerOptions{
		Key:  "category",
		Data: ctx.Body.Category,
	})
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, created)
}

func (pc *PaymentController) GetPaymentIntent(ctx *interfaces.ApplicationContext[any]) {
	id, _ := ctx.Param["id"].(string)
	status, err := pc.Service.GetPaymentIntent(ctx.RequestContext(), id)
	if err != nil {
		respondWithPaymentError(ctx.Ctx, "retrieve payment intent", err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, status)
}

func (pc *PaymentController) CreateConnectionToken(ctx *interfaces.ApplicationContext[any]) {
	secret, err := pc.Service.CreateConnectionToken(ctx.RequestContext())
	if err != nil {
		respondWithPaymentError(ctx.Ctx, "create connection token", err)
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, map[string]any{
		"secret": secret,
	})
}

func (pc *PaymentController) ProcessOnReader(ctx *interfaces.ApplicationContext[dto.ProcessOnReaderDTO]) {
	if errs := validator.ValidatorInstance.ValidateStruct(ctx.Body); errs != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validator.Message(errs))
		return
	}
	result, err := pc.Service.ProcessOnReader(ctx.RequestContext(), ctx.Body.PaymentIntentID)
	if err != nil {
		respondWithPaymentError(ctx.Ctx, "process payment intent on reader", err)
		return
	}
	logger.Info("payment intent sent to reader", logger.LoggerOptions{
		Key:  "paymentIntent",
		Data: ctx.Body.PaymentIntentID,
	}, logger.LoggerOptions{
		Key:  "reader",
		Data: result.Reader.ID,
	}, logger.LoggerOptions{
		Key:  "cardSimulationFailed",
		Data: result.Simulation.Failed(),
	})
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, map[string]any{
		"reader": result.Reader.Raw,
	})
}

func respondWithPaymentError(ctx any, operation string, err error) {
	switch {
	case errors.Is(err, payments.ErrMissingPaymentFields), errors.Is(err, payments.ErrMissingPaymentIntent):
		apperrors.ValidationFailedError(ctx, err.Error())
	case errors.Is(err, payments.ErrReaderNotConfigured):
		apperrors.ConfigurationError(ctx, err.Error())
	default:
		apperrors.ExternalDependencyError(ctx, "payment processor", operation, err)
	}
}
