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
	"go.uber.org/zap"

	"hitedu_backend/internal/config"
	"hitedu_backend/internal/controller"
	"hitedu_backend/internal/repository"
	"hitedu_backend/internal/service"
	"hitedu_backend/pkg/logger"
	"hitedu_backend/pkg/monitoring"
	"hitedu_backend/pkg/security"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *repository.FileDB
}

type repositories struct {
	user     *repository.UserRepository
	video    *repository.VideoRepository
	learning *repository.LearningRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	content   *service.ContentService
	learning  *service.LearningService
	analytics *service.AnalyticsService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	content   *controller.ContentController
	learning  *controller.LearningController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *repository.FileDB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		video:    repository.NewVideoRepository(db),
		learning: repository.NewLearningRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		auth:      service.NewAuthService(repos.user),
		user:      service.NewUserService(repos.user),
		content:   service.NewContentService(repos.video),
		learning:  service.NewLearningService(repos.learning),
		analytics: service.NewAnalyticsService(),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		content:   controller.NewContentController(s.content),
		learning:  controller.NewLearningController(s.learning),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))
	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.Init(cfg.Log.File, cfg.Server.Mode == "debug")
	logger.Log.Info("Logger initialized successfully")

	db, err := repository.Open(cfg.Storage.DBFile)
	if err != nil {
		logger.Log.Fatal("Failed to open database file", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
