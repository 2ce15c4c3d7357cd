package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/controller"
	"ohppos.io/application/controller/dto"
	"ohppos.io/application/interfaces"
)

func TerminalRouter(router *gin.RouterGroup, paymentController *controller.PaymentController) {
	terminalRouter := router.Group("/terminal")
	{
		terminalRouter.POST("/connection_token", func(ctx *gin.Context) {
			appContext := ctx.MustGet(constants.APP_CONTEXT).(*interfaces.ApplicationContext[any])
			paymentController.CreateConnectionToken(appContext)
		})

		terminalRouter.POST("/charge", func(ctx *gin.Context) {
			appContext := ctx.MustGet(constants.APP_CONTEXT).(*interfaces.ApplicationContext[any])
			var body dto.ProcessOnReaderDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			paymentController.ProcessOnReader(&interfaces.ApplicationContext[dto.ProcessOnReaderDTO]{
				Ctx:     ctx,
				Context: appContext.Context,
				Body:    &body,
				Keys:    appContext.Keys,
				Header:  appContext.Header,
				Method:  appContext.Method,
			})
		})
	}
}
