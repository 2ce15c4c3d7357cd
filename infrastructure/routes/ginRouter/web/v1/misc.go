package routev1

import (
	"github.com/gin-gonic/gin"
	"ohppos.io/application/controller"
	"ohppos.io/entities"
)

// MiscRouter holds routes that sit outside the admission gate.
func MiscRouter(router gin.IRoutes, mode entities.OperatingMode, guard gin.HandlerFunc) {
	router.GET("/health", guard, func(ctx *gin.Context) {
		controller.Health(ctx, mode)
	})
}
