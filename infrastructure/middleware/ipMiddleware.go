package middlewares

import (
	"github.com/gin-gonic/gin"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
	"ohppos.io/application/middlewares"
	"ohppos.io/infrastructure/ipresolver"
	"ohppos.io/infrastructure/ratelimit"
)

func RateLimitMiddleware(limiter *ratelimit.FixedWindowLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		savedCtx := (ctx.MustGet(constants.APP_CONTEXT)).(*interfaces.ApplicationContext[any])
		appContext, next := middlewares.RateLimitMiddleware(savedCtx, limiter, ipresolver.FromRequest(ctx.Request))
		if next {
			ctx.Set(constants.APP_CONTEXT, appContext)
			ctx.Next()
		}
	}
}
