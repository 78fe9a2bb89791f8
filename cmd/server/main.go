// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/api"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/cache"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/config"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/refresh"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/service"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/sheets"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the summary cache. Redis being unreachable is not fatal,
	// the dashboard recomputes summaries on every request instead.
	summaryCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Summary cache unavailable, continuing without caching")
		summaryCache = nil
	}

	// Initialize the sheet fetch pipeline
	client := sheets.NewClient(cfg.Sheets.BaseURL, time.Duration(cfg.Sheets.RequestTimeoutSeconds)*time.Second)
	fetcher := sheets.NewFetcher(client)

	store := refresh.NewStore()
	refresher := refresh.NewRefresher(fetcher, store, time.Duration(cfg.Sheets.RefreshIntervalSeconds)*time.Second)

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	defer stopRefresh()
	go refresher.Run(refreshCtx)

	// Initialize services
	dashboardService := service.NewDashboardService(store, refresher, summaryCache)

	// Initialize HTTP server
	router := api.NewRouter(dashboardService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	stopRefresh()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
