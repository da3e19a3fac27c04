package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/seha22/studienhouse/docs"
	"github.com/seha22/studienhouse/internal/config"
	"github.com/seha22/studienhouse/internal/middleware"
	"github.com/seha22/studienhouse/internal/model"
	"github.com/seha22/studienhouse/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, repos, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerStaffRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/landing", c.landing.GetLanding)

		// Anonymous callers get the published tree; staff may ask for
		// the full tree with ?all=1, so identity is resolved when present.
		public.GET("/catalog", middleware.TryAuthMiddleware(cfg, repos.user), c.catalog.GetCatalog)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/progress", c.progress.SaveProgress)
}

func (a *App) registerStaffRoutes(rg *gin.RouterGroup, c *controllers) {
	staff := rg.Group("/")
	staff.Use(middleware.RoleMiddleware(model.Admin, model.Teacher))
	{
		staff.POST("/modules", c.module.CreateModule)
		staff.POST("/modules/:id/publish", c.module.PublishModule)
		staff.POST("/modules/:id/unpublish", c.module.UnpublishModule)
		staff.POST("/materials", c.material.CreateMaterial)
		staff.POST("/materials/upload", c.material.UploadMaterial)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses", c.course.CreateCourse)
		admin.POST("/courses/:id/publish", c.course.PublishCourse)
		admin.POST("/courses/:id/unpublish", c.course.UnpublishCourse)
		admin.PUT("/landing", c.landing.SaveLanding)
		admin.POST("/landing/upload", c.landing.UploadLandingAsset)
	}
}
