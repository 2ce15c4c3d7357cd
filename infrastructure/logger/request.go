package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"ohppos.io/application/constants"
	"ohppos.io/infrastructure/useragent"
)

// RequestLogger logs one line per request once the handler chain has finished.
// identity resolves the client key the same way the rate limiter sees it.
func RequestLogger(identity func(*gin.Context) string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		agent := useragent.ParseUserAgent(ctx.Request.UserAgent())
		payload := []LoggerOptions{
			{Key: "method", Data: ctx.Request.Method},
			{Key: "path", Data: ctx.FullPath()},
			{Key: "status", Data: ctx.Writer.Status()},
			{Key: "latency", Data: time.Since(start).String()},
			{Key: "client", Data: identity(ctx)},
			{Key: "requestID", Data: ctx.Writer.Header().Get(constants.REQUEST_ID_HEADER)},
			{Key: "agent", Data: agent},
		}
		if ctx.FullPath() == "" {
			payload[1] = LoggerOptions{Key: "path", Data: ctx.Request.URL.Path}
		}
		switch status := ctx.Writer.Status(); {
		case status >= 500:
			Error("request failed", payload...)
		case status >= 400:
			Warning("request rejected", payload...)
		default:
			Info("request served", payload...)
		}
	}
}
