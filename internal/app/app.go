package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seha22/studienhouse/internal/config"
	"github.com/seha22/studienhouse/internal/controller"
	"github.com/seha22/studienhouse/internal/repository"
	"github.com/seha22/studienhouse/internal/service"
	"github.com/seha22/studienhouse/pkg/database"
	"github.com/seha22/studienhouse/pkg/logger"
	"github.com/seha22/studienhouse/pkg/monitoring"
	"github.com/seha22/studienhouse/pkg/security"
	"github.com/seha22/studienhouse/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig copies a freshly reloaded config over the one shared with
// services and middleware, then notifies registered callbacks. Settings
// bound once at startup (port, middleware chain) keep their original
// values until restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	*a.Config = *cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

type repositories struct {
	user     *repository.UserRepository
	course   *repository.CourseRepository
	module   *repository.ModuleRepository
	material *repository.MaterialRepository
	progress *repository.ProgressRepository
	landing  *repository.LandingRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	catalog  *service.CatalogService
	publish  *service.PublishService
	material *service.MaterialService
	progress *service.ProgressService
	landing  *service.LandingService
}

type controllers struct {
	auth     *controller.AuthController
	catalog  *controller.CatalogController
	course   *controller.CourseController
	module   *controller.ModuleController
	material *controller.MaterialController
	progress *controller.ProgressController
	landing  *controller.LandingController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		course:   repository.NewCourseRepository(db),
		module:   repository.NewModuleRepository(db),
		material: repository.NewMaterialRepository(db),
		progress: repository.NewProgressRepository(db),
		landing:  repository.NewLandingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.catalog = service.NewCatalogService(repos.course, repos.module)
	s.publish = service.NewPublishService(repos.course, repos.module, &service.StoredProcPublishHook{DB: db})
	s.material = service.NewMaterialService(repos.material, s.storage)
	s.progress = service.NewProgressService(repos.progress)
	s.landing = service.NewLandingService(repos.landing, s.storage, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		catalog:  controller.NewCatalogController(s.catalog),
		course:   controller.NewCourseController(s.catalog, s.publish),
		module:   controller.NewModuleController(s.catalog, s.publish),
		material: controller.NewMaterialController(s.material),
		progress: controller.NewProgressController(s.progress),
		landing:  controller.NewLandingController(s.landing),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("studienhouse", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
