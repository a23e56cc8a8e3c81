package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/movr-go/internal/config"
	"github.com/jengzang/movr-go/internal/handler"
	"github.com/jengzang/movr-go/internal/middleware"
	"github.com/jengzang/movr-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc *service.MobilityService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "movr API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API 路由组
	api := r.Group("/api/v1")
	if cfg.RateLimit > 0 {
		api.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.RateWindow)))
	}
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}

	h := handler.NewMobilityHandler(svc)
	{
		api.POST("/sessions", h.CompressSessions)
		api.POST("/flows", h.AggregateFlows)
		api.POST("/gyration", h.RadiusOfGyration)
		api.POST("/profile", h.Profile)
	}

	return r
}
