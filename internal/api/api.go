// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/api/handlers"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/api/middleware"
	"github.com/Sandeep-Rana-1094/newV2-md-dashboard/internal/service"
)

func NewRouter(dashboard *service.DashboardService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	dashboardHandler := handlers.NewDashboardHandler(dashboard)

	apiGroup.GET("/status", dashboardHandler.GetStatus)
	apiGroup.POST("/refresh", dashboardHandler.TriggerRefresh)
	apiGroup.GET("/summary", dashboardHandler.GetSummary)

	reserveGroup := apiGroup.Group("/reserve")
	{
		reserveGroup.GET("/orders", dashboardHandler.GetReserveOrders)
		reserveGroup.GET("/kpis", dashboardHandler.GetReserveKPIs)
	}

	gpGroup := apiGroup.Group("/gp")
	{
		gpGroup.GET("/records", dashboardHandler.GetGPRecords)
		gpGroup.GET("/top_segments", dashboardHandler.GetTopSegments)
		gpGroup.GET("/country_segment", dashboardHandler.GetCountrySegmentPivot)
	}

	orderGroup := apiGroup.Group("/orders")
	{
		orderGroup.GET("", dashboardHandler.GetCombinedOrders)
		orderGroup.GET("/product_sales", dashboardHandler.GetProductSales)
		orderGroup.GET("/top_products", dashboardHandler.GetTopProducts)
		orderGroup.GET("/kpis", dashboardHandler.GetOrderKPIs)
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
