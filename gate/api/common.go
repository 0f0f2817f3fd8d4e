package api

import (
	"time"

	"github.com/DiD92/wwyd/common/http"
)

// PingHandler ping 检查
func PingHandler(c *http.Context) error {
	c.Success(map[string]any{
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"service":   "wwyd",
	})
	return nil
}

// HealthChecker 返回各依赖的状态，nil 表示正常
type HealthChecker func(c *http.Context) map[string]error

// HealthHandler 健康检查
func HealthHandler(check HealthChecker) http.HandlerFunc {
	return func(c *http.Context) error {
		services := map[string]string{}
		healthy := true
		for name, err := range check(c) {
			if err != nil {
				services[name] = err.Error()
				healthy = false
				continue
			}
			services[name] = "ok"
		}

		status := map[string]any{
			"healthy":   healthy,
			"services":  services,
			"timestamp": time.Now().Unix(),
		}
		if !healthy {
			c.JSON(503, http.NewResponse(http.CodeError, "服务不健康", status))
			return nil
		}
		c.Success(status)
		return nil
	}
}
