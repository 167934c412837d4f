package routes

import (
	"github.com/braylark/ingyn-frontend-sub000/controllers"
	"github.com/gin-gonic/gin"
)

func SetupGateRoutes(protected *gin.RouterGroup, gateController *controllers.GateController) {
	gate := protected.Group("/gate")
	{
		gate.GET("", gateController.GetStatus)
		gate.GET("/pricing", gateController.GetPricing)
		gate.POST("/trigger", gateController.Trigger)
		gate.POST("/steps/pricing", gateController.CompletePricing)
		gate.POST("/steps/account", gateController.CompleteAccount)
		gate.POST("/steps/payment", gateController.CompletePayment)
		gate.POST("/cancel", gateController.Cancel)
	}

	scheduler := protected.Group("/scheduler")
	{
		scheduler.POST("/connect", gateController.ConnectSocial)
	}
}
