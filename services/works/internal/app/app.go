package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zidesign/pkg/cache"
	"zidesign/pkg/config"
	"zidesign/pkg/database"
	"zidesign/pkg/events"
	"zidesign/pkg/function"
	"zidesign/pkg/logger"
	"zidesign/pkg/middleware"
	"zidesign/pkg/s3"
	worksHTTP "zidesign/services/works/internal/controller/http"
	"zidesign/services/works/internal/repo/persistent"
	"zidesign/services/works/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "zidesign/services/works/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Events are optional for the works service
		log.Warn("Failed to connect to redis: %v (continuing without events)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		registry:    prometheus.NewRegistry(),
	}, nil
}

func (a *App) Run() error {
	var publisher usecase.EventPublisher
	if a.redisClient != nil {
		publisher = events.NewPublisher(a.redisClient)
	}

	workRepo := persistent.NewWorkRepository(a.db)
	worksUseCase := usecase.NewWorksUseCase(workRepo, a.s3Client, publisher, a.log)
	worksHandler := worksHTTP.NewWorksHandler(worksUseCase, a.log)

	gin.SetMode(a.cfg.GinMode)
	r := NewRouter(worksHandler, a.log, a.registry)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.WorksPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Works service starting on port %s", a.cfg.WorksPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func NewRouter(handler function.Handler, log *logger.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.NewMetrics(registry, "works").Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fn := function.Gin(function.Recover(log, handler))
	r.Any("/", fn)
	r.Any("/api/v1/works", fn)
	r.NoRoute(fn)

	return r
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down works service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Works service exited")
	return nil
}
