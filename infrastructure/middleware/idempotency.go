package middlewares

import (
	"github.com/gin-gonic/gin"
	"ohppos.io/application/constants"
	"ohppos.io/application/interfaces"
	"ohppos.io/application/middlewares"
)

func IdempotencyKeyMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		savedCtx := (ctx.MustGet(constants.APP_CONTEXT)).(*interfaces.ApplicationContext[any])
		appContext, next := middlewares.IdempotencyKeyMiddleware(savedCtx)
		if next {
			ctx.Set(constants.APP_CONTEXT, appContext)
			ctx.Next()
		}
	}
}
