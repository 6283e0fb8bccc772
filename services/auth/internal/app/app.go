package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zidesign/pkg/config"
	"zidesign/pkg/database"
	"zidesign/pkg/function"
	"zidesign/pkg/logger"
	"zidesign/pkg/middleware"
	authHTTP "zidesign/services/auth/internal/controller/http"
	"zidesign/services/auth/internal/repo/persistent"
	"zidesign/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "zidesign/services/auth/docs" // Swagger docs
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *gorm.DB
	registry   *prometheus.Registry
	httpServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		registry: prometheus.NewRegistry(),
	}, nil
}

func (a *App) Run() error {
	userRepo := persistent.NewUserRepository(a.db)
	authUseCase := usecase.NewAuthUseCase(userRepo, a.cfg.AdminEmail, a.log)
	authHandler := authHTTP.NewAuthHandler(authUseCase, a.log)

	gin.SetMode(a.cfg.GinMode)
	r := NewRouter(authHandler, a.log, a.registry)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.AuthPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Auth service starting on port %s", a.cfg.AuthPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

// NewRouter mounts the auth function on every path that is not one of the
// operational endpoints, the way a function trigger ignores the path.
func NewRouter(handler function.Handler, log *logger.Logger, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.NewMetrics(registry, "auth").Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fn := function.Gin(function.Recover(log, handler))
	r.Any("/", fn)
	r.Any("/api/v1/auth", fn)
	r.NoRoute(fn)

	return r
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down auth service...")
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

	a.log.Info("Auth service exited")
	return nil
}
