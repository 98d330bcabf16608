package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/police_smart_analytics/internal/analytics"
	"github.com/shenikar/police_smart_analytics/internal/config"
	v1 "github.com/shenikar/police_smart_analytics/internal/handler/http/v1"
	"github.com/shenikar/police_smart_analytics/internal/handler/web"
	"github.com/shenikar/police_smart_analytics/internal/service"
	"github.com/shenikar/police_smart_analytics/pkg/logger"

	_ "github.com/shenikar/police_smart_analytics/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Police Smart Analytics Dashboard API
// @version 1.0
// @description Dashboard over the police incident analytics backend.
// @host localhost:8080
// @BasePath /api/v1
func newRouter(dashboard service.DashboardService, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	web.NewHandler(dashboard, log).RegisterRoutes(router)

	api := router.Group("/api/v1")
	v1.NewHandler(dashboard, log).RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

func stalePolicy(cfg *config.Config) service.StalePolicy {
	if cfg.DiscardStaleResponses {
		return service.DiscardStale
	}
	return service.LastResolvedWins
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	// Клиент аналитического сервиса
	backend := analytics.NewClient(cfg.BackendURL, cfg.BackendTimeout, log)
	log.WithField("backend_url", cfg.BackendURL).Info("Analytics backend configured")

	dashboard := service.NewDashboardController(backend, log, service.Options{
		SeedCount:   cfg.SeedCount,
		StalePolicy: stalePolicy(cfg),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Первичная загрузка данных, как при открытии страницы
	if cfg.RefreshOnStart {
		go dashboard.Refresh(ctx, dashboard.Filters())
	}

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: newRouter(dashboard, log),
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
