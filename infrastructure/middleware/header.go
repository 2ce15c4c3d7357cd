package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
	"ohppos.io/application/utils"
)

// AppContextMiddleware builds the ApplicationContext every later middleware and route reads.
// Processor calls must outlive a disconnected client, so the request context is detached
// from cancellation.
func AppContextMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(constants.APP_CONTEXT, &interfaces.ApplicationContext[any]{
			Ctx:            ctx,
			Context:        context.WithoutCancel(ctx.Request.Context()),
			Keys:           map[string]any{},
			Header:         ctx.Request.Header,
			Method:         ctx.Request.Method,
			ResponseHeader: ctx.Writer.Header(),
		})
		ctx.Next()
	}
}

// NoCacheMiddleware marks every response as non-cacheable.
func NoCacheMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "no-store")
		ctx.Header("Pragma", "no-cache")
		ctx.Next()
	}
}

// RequestIDMiddleware echoes the caller's request id or assigns a new ULID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(constants.REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = utils.GenerateUULDString()
		}
		ctx.Header(constants.REQUEST_ID_HEADER, requestID)
		ctx.Next()
	}
}
