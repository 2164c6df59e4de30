package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wellnessa_backend/internal/config"
	"wellnessa_backend/internal/controller"
	"wellnessa_backend/internal/middleware"
	"wellnessa_backend/internal/repository"
	"wellnessa_backend/internal/service"
	"wellnessa_backend/pkg/configwatcher"
	"wellnessa_backend/pkg/database"
	"wellnessa_backend/pkg/logger"
	"wellnessa_backend/pkg/monitoring"
	"wellnessa_backend/pkg/security"
	"wellnessa_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configDir = "configs"

type App struct {
	Config      *config.Config
	Router      *gin.Engine
	DB          *gorm.DB
	Redis       *redis.Client
	RateLimiter *security.RateLimiter

	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stop            chan struct{}
}

type repositories struct {
	user       *repository.UserRepository
	assessment *repository.AssessmentRepository
	result     *repository.ResultRepository
	content    *repository.ContentRepository
	analytics  *repository.AnalyticsCache
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	assessment *service.AssessmentService
	question   *service.QuestionService
	result     *service.ResultService
	analytics  *service.AnalyticsService
	content    *service.ContentService
	storage    *service.StorageService
	export     *service.ExportService
}

type controllers struct {
	auth       *controller.AuthController
	assessment *controller.AssessmentController
	result     *controller.ResultController
	admin      *controller.AdminController
	catalog    *controller.CatalogController
	content    *controller.ContentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		user:       repository.NewUserRepository(db),
		assessment: repository.NewAssessmentRepository(db),
		result:     repository.NewResultRepository(db),
		content:    repository.NewContentRepository(db),
	}
	if rdb != nil {
		repos.analytics = repository.NewAnalyticsCache(rdb, cfg.Redis.AnalyticsTTL())
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	// A nil *AnalyticsCache must not become a non-nil interface.
	var cache service.AnalyticsCacher
	if repos.analytics != nil {
		cache = repos.analytics
	}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.user, cfg.JWT.Secret)
	s.user = service.NewUserService(repos.user, cfg.Schedule)
	s.analytics = service.NewAnalyticsService(repos.result, repos.user, cache)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.result, repos.user, s.analytics, cfg.Schedule)
	s.question = service.NewQuestionService(repos.assessment)
	s.result = service.NewResultService(repos.result)
	s.content = service.NewContentService(repos.content)
	s.export = service.NewExportService(repos.result, repos.user, s.storage)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		assessment: controller.NewAssessmentController(s.assessment),
		result:     controller.NewResultController(s.result, s.analytics),
		admin:      controller.NewAdminController(s.user, s.result, s.analytics, s.export),
		catalog:    controller.NewCatalogController(s.assessment, s.question),
		content:    controller.NewContentController(s.content),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.RateLimiter.Middleware())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects the stores and builds the router. With cfg.MigrateOnly it
// returns right after the schema migration.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.Stringer("level", logger.Level()))

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{Config: cfg, DB: db, stop: make(chan struct{})}
	if cfg.MigrateOnly {
		return app
	}

	if cfg.Seed {
		if err := database.Seed(db, time.Now()); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
		logger.Log.Info("Database seeded")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	app.Redis = rdb

	if err := controller.RegisterValidators(); err != nil {
		logger.Log.Fatal("Failed to register validators", zap.Error(err))
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	app.Router = router

	app.RateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg)
		logger.Log.Info("Log level updated", zap.Stringer("level", logger.Level()))
	})
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.RateLimiter.Update(newCfg.RateLimit.MaxRequests, newCfg.RateLimit.Window())
	})

	return app
}

func (a *App) startBackgroundTasks() {
	go a.RateLimiter.StartCleanup(a.stop)

	go func() {
		err := configwatcher.Watch(configDir+"/config.yaml", func(newCfg *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(newCfg)
			}
		}, a.stop)
		if err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.startBackgroundTasks()

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
