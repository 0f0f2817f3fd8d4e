package api

import (
	"github.com/DiD92/wwyd/common/http"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(server *http.HttpServer, problems *ProblemHandler, health HealthChecker, v1Middlewares ...http.MiddlewareFunc) {
	server.GET("/ping", PingHandler)
	server.GET("/health", HealthHandler(health))

	// API v1 路由组
	v1 := server.Group("/api/v1", v1Middlewares...)
	{
		v1.GET("/hands", problems.Hands)
		v1.GET("/problems", problems.List)
		v1.POST("/problems", problems.Generate)
		v1.GET("/problems/:id", problems.Get)
	}
}
