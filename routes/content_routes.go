package routes

import (
	"github.com/braylark/ingyn-frontend-sub000/controllers"
	"github.com/gin-gonic/gin"
)

func SetupContentRoutes(protected *gin.RouterGroup, contentController *controllers.ContentController) {
	posts := protected.Group("/posts")
	{
		posts.GET("", contentController.GetPosts)
		posts.POST("", contentController.CreatePost)
		posts.POST("/generate", contentController.GenerateCustomPost)
		posts.POST("/suggested/generate", contentController.GenerateSuggestedPost)
		posts.POST("/:id/edit", contentController.BeginEditCaption)
		posts.POST("/:id/edit/save", contentController.SaveCaption)
		posts.DELETE("/:id", contentController.DeletePost)
	}
}
