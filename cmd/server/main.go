package main

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/movr-go/internal/api"
	"github.com/jengzang/movr-go/internal/config"
	"github.com/jengzang/movr-go/internal/logging"
	"github.com/jengzang/movr-go/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load config")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.NewMobilityService(service.Options{
		SessionGap: cfg.SessionGap,
		FlowGap:    cfg.FlowGap,
		MaxPoints:  cfg.MaxPoints,
	})

	// 初始化路由
	router := api.SetupRouter(cfg, svc)

	// 启动服务器
	logging.Info().
		Str("port", cfg.Port).
		Bool("auth", cfg.JWTSecret != "").
		Float64("session_gap", cfg.SessionGap).
		Float64("flow_gap", cfg.FlowGap).
		Msg("Server starting")
	if err := router.Run(cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("Failed to start server")
	}
}
