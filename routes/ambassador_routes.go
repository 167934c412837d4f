package routes

import (
	"github.com/braylark/ingyn-frontend-sub000/controllers"
	"github.com/gin-gonic/gin"
)

func SetupAmbassadorRoutes(protected *gin.RouterGroup, ambassadorController *controllers.AmbassadorController) {
	ambassador := protected.Group("/ambassador")
	{
		ambassador.GET("", ambassadorController.GetProfile)
		ambassador.PATCH("", ambassadorController.UpdateProfile)
		ambassador.POST("/values/toggle", ambassadorController.ToggleValue)
		ambassador.POST("/themes/toggle", ambassadorController.ToggleTheme)
		ambassador.PUT("/tones/:key", ambassadorController.SetTone)
		ambassador.POST("/next", ambassadorController.NextSection)
		ambassador.POST("/previous", ambassadorController.PreviousSection)
		ambassador.POST("/skip", ambassadorController.SkipSection)
		ambassador.POST("/complete", ambassadorController.Complete)
	}
}
