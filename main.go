package main

import (
	"flag"
	"log"
	"strings"

	"contentai/config"
	"contentai/database"
	"contentai/logger"
	"contentai/middleware"
	"contentai/router"
	"contentai/service"

	"go.uber.org/zap"
)

// @title 内容管理 API
// @version 1.0
// @description 按用户隔离的内容管理，创建/更新时自动生成 AI 摘要
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("contentai v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖 + 环境变量）
	cfg := config.MustLoadConfig(configFile)

	// 命令行参数覆盖端口配置
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	config.PrintConfig()

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		zl.Fatal("数据库初始化失败", zap.Error(err))
	}

	middleware.InitJWT(cfg)

	// 摘要客户端只创建一次，注入到处理器
	if cfg.AI.APIKey == "" {
		zl.Warn("未配置摘要服务密钥（DEEPSEEK_API_KEY），摘要将使用占位文本")
	}
	summarizer := service.NewSummaryClient(service.SummaryClientConfig{
		APIKey:  cfg.AI.APIKey,
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
	}, zl.Named("summary"))

	r := router.SetupRouter(cfg, database.GetDB(), summarizer)

	zl.Info("服务已启动",
		zap.String("addr", cfg.Server.Port),
		zap.String("api", "http://localhost"+cfg.Server.Port+"/api/v1/contents"))

	if err := r.Run(cfg.Server.Port); err != nil {
		zl.Fatal("服务器启动失败", zap.Error(err))
	}
}
