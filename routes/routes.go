package routes

import (
	"github.com/braylark/ingyn-frontend-sub000/config"
	"github.com/braylark/ingyn-frontend-sub000/controllers"
	"github.com/braylark/ingyn-frontend-sub000/generation"
	"github.com/braylark/ingyn-frontend-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	generator := generation.NewClient(cfg.GenerationAPIURL)

	// Initialize controllers
	sessionController := controllers.NewSessionController(db)
	ambassadorController := controllers.NewAmbassadorController(db, generator)
	contentController := controllers.NewContentController(db, generator)
	gateController := controllers.NewGateController(db)
	generationController := controllers.NewGenerationController(generator)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/session", sessionController.CreateSession)
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
	}

	// Session-scoped routes
	protected := r.Group("/api")
	protected.Use(middleware.SessionMiddleware(db))
	{
		protected.GET("/session", sessionController.GetSession)
		protected.PUT("/session/page", sessionController.Navigate)
		protected.PUT("/session/view-mode", sessionController.SetViewMode)
		protected.GET("/notifications", sessionController.GetNotifications)

		SetupAmbassadorRoutes(protected, ambassadorController)
		SetupContentRoutes(protected, contentController)
		SetupGateRoutes(protected, gateController)
		SetupGenerationRoutes(protected, generationController, uploadController)
	}
}
