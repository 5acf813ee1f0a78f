package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"github.com/bargavjillella/resume-analyzer/internal/api/handler"
	"github.com/bargavjillella/resume-analyzer/internal/api/router"
	"github.com/bargavjillella/resume-analyzer/internal/config"
	"github.com/bargavjillella/resume-analyzer/internal/logger"
)

var (
	version     = "1.0.0"           //nolint:gochecknoglobals
	serviceName = "resume-analyzer" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}

	logger.Init(cfg.Logger)
	// hertz框架日志桥接到zerolog
	glog.SetLogger(hertzadapter.From(logger.Logger))
	logger.Info().Str("service", serviceName).Str("version", version).Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 初始化分析管线（含实体标注模型与PDF解析器，失败则拒绝启动）
	analyzeHandler, err := handler.NewAnalyzeHandler(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化分析管线失败")
	}
	logger.Info().Msg("分析管线初始化成功")

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
	)
	router.RegisterRoutes(h, analyzeHandler, cfg.Server.APIKey)

	// 优雅退出
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info().Msg("收到退出信号，正在关闭服务")
		if err := h.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("关闭服务失败")
		}
	}()

	logger.Info().Str("address", cfg.Server.Address).Msg("HTTP服务启动")
	h.Spin()
}
