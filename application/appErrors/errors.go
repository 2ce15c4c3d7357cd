package apperrors

import (
	"fmt"
	"net/http"

	"ohppos.io/infrastructure/logger"
	server_response "ohppos.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.RespondWithError(ctx, http.StatusNotFound, message)
}

func ValidationFailedError(ctx interface{}, message string) {
	server_response.Responder.RespondWithError(ctx, http.StatusBadRequest, message)
}

func AuthenticationError(ctx interface{}, message string) {
	server_response.Responder.RespondWithError(ctx, http.StatusUnauthorized, message)
}

func RateLimitError(ctx interface{}, message string) {
	server_response.Responder.RespondWithError(ctx, http.StatusTooManyRequests, message)
}

func ErrorProcessingPayload(ctx interface{}) {
	server_response.Responder.RespondWithError(ctx, http.StatusBadRequest, "Invalid JSON payload")
}

func MissingHeaderError(ctx interface{}, header string) {
	server_response.Responder.RespondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("Missing %s header", header))
}

// ServerMisconfigured is sent when the service cannot safely serve the request with the
// configuration it was started with.
func ServerMisconfigured(ctx interface{}, message string) {
	logger.Error("server misconfiguration", logger.LoggerOptions{
		Key:  "reason",
		Data: message,
	})
	server_response.Responder.RespondWithError(ctx, http.StatusInternalServerError, message)
}

// ConfigurationError is a request-time configuration problem the caller can act on,
// like charging on a production reader that was never configured.
func ConfigurationError(ctx interface{}, message string) {
	server_response.Responder.RespondWithError(ctx, http.StatusBadRequest, message)
}

// ExternalDependencyError relays a payment processor failure with the processor's message.
func ExternalDependencyError(ctx interface{}, serviceName string, operation string, err error) {
	logger.Error(fmt.Sprintf("error with %s", serviceName), logger.LoggerOptions{
		Key:  "operation",
		Data: operation,
	}, logger.LoggerOptions{
		Key:  "error",
		Data: err.Error(),
	})
	server_response.Responder.RespondWithError(ctx, http.StatusInternalServerError, err.Error())
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("unexpected server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.RespondWithError(ctx, http.StatusInternalServerError, "Internal server error")
}
