package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/vietcart-next/internal/app"
	"github.com/vietcart-next/internal/config"
	"github.com/vietcart-next/internal/logger"
	"github.com/vietcart-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiGreen = "\033[32m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.Session.SecretKey) {
			stdLog.Fatalf("会话 secret 过弱或仍为默认值，请在生产环境中配置与后端一致的强随机密钥")
		}
	} else if isWeakSecret(cfg.Session.SecretKey) {
		stdLog.Printf("警告: 会话 secret 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 初始化购物车镜像库
	if err := models.InitDB(cfg.Mirror.Driver, cfg.Mirror.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Mirror.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Mirror.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Mirror.Pool.ConnMaxLifetimeSeconds,
	}); err != nil {
		stdLog.Fatalf("镜像库初始化失败: %v", err)
	}

	// 自动迁移数据库表
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("镜像库迁移失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 解析命令行参数
	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██╗   ██╗██╗███████╗████████╗ ██████╗ █████╗ ██████╗ ████████╗" + ansiReset)
	fmt.Println(ansiCyan + "██║   ██║██║██╔════╝╚══██╔══╝██╔════╝██╔══██╗██╔══██╗╚══██╔══╝" + ansiReset)
	fmt.Println(ansiCyan + "██║   ██║██║█████╗     ██║   ██║     ███████║██████╔╝   ██║   " + ansiReset)
	fmt.Println(ansiCyan + "╚██╗ ██╔╝██║██╔══╝     ██║   ██║     ██╔══██║██╔══██╗   ██║   " + ansiReset)
	fmt.Println(ansiCyan + " ╚████╔╝ ██║███████╗   ██║   ╚██████╗██║  ██║██║  ██║   ██║   " + ansiReset)
	fmt.Println(ansiCyan + "  ╚═══╝  ╚═╝╚══════╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   " + ansiReset)
	fmt.Println(ansiGreen + ansiBold + "VietCart Storefront Gateway" + ansiReset)
	fmt.Println(ansiBlue + "• Root: https://github.com/vietcart-next" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	if strings.Contains(normalized, "change-me") ||
		strings.Contains(normalized, "change-in-production") ||
		strings.Contains(normalized, "your-secret-key") {
		return true
	}
	return false
}
