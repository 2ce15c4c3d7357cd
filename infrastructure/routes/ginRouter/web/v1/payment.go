package routev1

import (
	"github.com/gin-gonic/gin"
	apperrors "ohppos.io/application/appErrors"
	"ohppos.io/application/constants"
	"ohppos.io/application/controller"
	"ohppos.io/application/controller/dto"
	"ohppos.io/application/interfaces"
)

func PaymentRouter(router *gin.RouterGroup, paymentController *controller.PaymentController) {
	router.POST("/payments", func(ctx *gin.Context) {
		appContext := ctx.MustGet(constants.APP_CONTEXT).(*interfaces.ApplicationContext[any])
		var body dto.CreatePaymentIntentDTO
		if err := ctx.ShouldBindJSON(&body); err != nil {
			apperrors.ErrorProcessingPayload(ctx)
			return
		}
		paymentController.CreatePaymentIntent(&interfaces.ApplicationContext[dto.CreatePaymentIntentDTO]{
			Ctx:     ctx,
			Context: appContext.Context,
			Body:    &body,
			Keys:    appContext.Keys,
			Header:  appContext.Header,
			Method:  appContext.Method,
		})
	})

	router.GET("/payment_intents/:id", func(ctx *gin.Context) {
		appContext := ctx.MustGet(constants.APP_CONTEXT).(*interfaces.ApplicationContext[any])
		paymentController.GetPaymentIntent(&interfaces.ApplicationContext[any]{
			Ctx:     ctx,
			Context: appContext.Context,
			Keys:    appContext.Keys,
			Header:  appContext.Header,
			Method:  appContext.Method,
			Param: map[string]any{
				"id": ctx.Param("id"),
			},
		})
	})
}
