package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/common/utils"
)

const RequestIDKey = "requestID"

// CorsMiddleware 跨域中间件
func CorsMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		if c.GetHeader("Origin") != "" {
			c.SetHeader("Access-Control-Allow-Origin", "*")
			c.SetHeader("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.SetHeader("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, X-Request-ID")
			c.SetHeader("Access-Control-Expose-Headers", "Content-Length, X-Request-ID")
		}

		// 处理预检请求
		if c.Method() == "OPTIONS" {
			c.AbortWithStatus(204)
		}
		return nil
	}
}

// LoggerMiddleware 请求结束后记录耗时与状态码
func LoggerMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		start := time.Now()
		c.Next()
		log.Info("HTTP %s %s %d from %s in %v, request %s",
			c.Method(), c.Path(), c.StatusCode(), c.ClientIP(), time.Since(start), c.GetString(RequestIDKey))
		return nil
	}
}

// RequestIDMiddleware 沿用客户端的 X-Request-ID，没有时生成 uuid
func RequestIDMiddleware() MiddlewareFunc {
	return func(c *Context) error {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.SetHeader("X-Request-ID", requestID)
		return nil
	}
}

// RateLimitMiddleware 令牌用完时返回 429
func RateLimitMiddleware(limiter *utils.RateLimiter) MiddlewareFunc {
	return func(c *Context) error {
		if !limiter.Allow() {
			c.TooManyRequests("")
			c.Abort()
		}
		return nil
	}
}
