package app

import (
	"wellnessa_backend/docs"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/middleware"
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/util"
	"wellnessa_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public
	a.registerPublicRoutes(router, c)

	auth := router.Group("/api", middleware.AuthMiddleware(cfg))
	{
		// 2. any signed-in user
		a.registerUserRoutes(auth.Group("/user", middleware.RequireLevel(model.LevelUser)), c)

		// 3. admins
		a.registerAdminRoutes(auth.Group("/admin", middleware.RequireLevel(model.LevelAdmin)), c, cfg)

		// 4. super admins
		a.registerSuperAdminRoutes(auth.Group("/superadmin", middleware.RequireLevel(model.LevelSuperAdmin)), c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/content/:page", c.content.GetPage)
	}
}

func (a *App) registerUserRoutes(user *gin.RouterGroup, c *controllers) {
	user.GET("/profile", c.auth.Profile)

	user.GET("/assessments/due", c.assessment.ListDue)
	user.GET("/assessments/:id", c.assessment.GetAssessment)
	user.POST("/assessments/:id/submit", c.assessment.Submit)

	user.GET("/results", c.result.MyResults)
	user.GET("/results/:id", c.result.MyResult)
	user.GET("/analytics", c.result.MyAnalytics)
}

func (a *App) registerAdminRoutes(admin *gin.RouterGroup, c *controllers, cfg *config.Config) {
	admin.GET("/users", c.admin.ListUsers)
	admin.POST("/users", c.admin.CreateUser)
	admin.GET("/users/:id/analytics", c.admin.UserAnalytics)

	admin.GET("/results", c.admin.ListResults)
	admin.POST("/results/export", c.admin.ExportResults)

	if cfg.Storage.Type == util.StorageLocal {
		admin.Static("/exports", cfg.Storage.LocalPath)
	}
}

func (a *App) registerSuperAdminRoutes(super *gin.RouterGroup, c *controllers) {
	super.GET("/assessments", c.catalog.ListAssessments)
	super.POST("/assessments", c.catalog.CreateAssessment)
	super.PATCH("/assessments/:id/active", c.catalog.SetActive)

	super.GET("/questions", c.catalog.ListQuestions)
	super.POST("/questions", c.catalog.AddQuestion)
	super.DELETE("/questions/:id", c.catalog.DeleteQuestion)

	super.GET("/content/:page", c.content.GetPage)
	super.PUT("/content/:page", c.content.UpdatePage)
}
