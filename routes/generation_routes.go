package routes

import (
	"github.com/braylark/ingyn-frontend-sub000/controllers"
	"github.com/gin-gonic/gin"
)

func SetupGenerationRoutes(protected *gin.RouterGroup, generationController *controllers.GenerationController, uploadController *controllers.UploadController) {
	protected.POST("/characters", generationController.CreateCharacter)
	protected.POST("/videos", generationController.CreateVideo)

	uploads := protected.Group("/uploads")
	{
		uploads.POST("/presigned-url", uploadController.GetPresignedURL)
	}
}
