package server_response

import (
	"github.com/gin-gonic/gin"
	"ohppos.io/infrastructure/logger"
)

type ginResponder struct{}

var Responder = ginResponder{}

// Respond writes payload as the JSON body and stops the handler chain.
func (gr ginResponder) Respond(ctx interface{}, code int, payload interface{}) {
	ginCtx, ok := (ctx).(*gin.Context)
	if !ok {
		logger.Error("could not transform interface{} to gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.AbortWithStatusJSON(code, payload)
}

// RespondWithError writes {"error": message}.
func (gr ginResponder) RespondWithError(ctx interface{}, code int, message string) {
	gr.Respond(ctx, code, map[string]any{
		"error": message,
	})
}
