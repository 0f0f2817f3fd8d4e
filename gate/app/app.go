package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/common/http"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/common/utils"
	"github.com/DiD92/wwyd/core/container"
	"github.com/DiD92/wwyd/gate/api"
	"github.com/DiD92/wwyd/gate/application/service"
)

func Run(ctx context.Context) error {
	conf := config.Conf

	c, err := container.NewGateContainer(conf)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Error("容器关闭失败: %v", err)
		}
	}()

	problemService := service.NewProblemService(
		c.GetCatalog(),
		c.GetProblemRepository(),
		c.GetSnapshotRepository(),
		c.GetProblemCache(),
		config.Generator,
		time.Duration(conf.Cache.SnapshotTtlSeconds)*time.Second,
	)
	log.Info("题库已加载: %d 种手牌", len(c.GetCatalog().List()))

	// 使用 common 封装的 gin 库 http-server
	server := http.NewHttpServer(
		http.WithPort(conf.HttpPort),
		http.WithMode(http.ModeForLogLevel(conf.Log.Level)),
	)

	// 中间处理器注册
	server.Use(
		http.RequestIDMiddleware(),
		http.CorsMiddleware(),
		http.LoggerMiddleware(),
	)

	// 路由注册，/api/v1 整体限流
	var v1Middlewares []http.MiddlewareFunc
	if conf.RateLimit.Rate > 0 {
		v1Middlewares = append(v1Middlewares, http.RateLimitMiddleware(utils.NewRateLimiter(conf.RateLimit.Rate, conf.RateLimit.Burst)))
	}
	api.RegisterRoutes(server, api.NewProblemHandler(problemService), healthChecker(c), v1Middlewares...)

	errCh := make(chan error, 1)
	go func() {
		log.Info("启动 HTTP 服务器，端口: %d", conf.HttpPort)
		errCh <- server.Start()
	}()

	stop := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP 服务器关闭失败: %v", err)
		} else {
			log.Info("HTTP 服务器已优雅关闭")
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	defer signal.Stop(sig)

	select {
	case <-ctx.Done():
		stop()
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP 服务器启动失败: %w", err)
		}
		return nil
	case s := <-sig:
		stop()
		log.Info("收到信号 %v，服务停止", s)
		return nil
	}
}

func healthChecker(c *container.GateContainer) api.HealthChecker {
	return func(hc *http.Context) map[string]error {
		ctx, cancel := context.WithTimeout(hc.Ctx(), 2*time.Second)
		defer cancel()

		status := map[string]error{
			"mongodb": c.GetMongo().Cli.Ping(ctx, readpref.Primary()),
		}
		cli, err := c.GetRedis().GetClient()
		if err == nil {
			err = cli.Ping(ctx).Err()
		}
		status["redis"] = err
		return status
	}
}
