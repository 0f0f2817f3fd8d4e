package container

import (
	"errors"
	"fmt"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/common/database"
	"github.com/DiD92/wwyd/common/log"
)

// BaseContainer 基础容器，管理共享的数据库连接
type BaseContainer struct {
	mongo *database.MongoManager
	redis *database.RedisManager
}

// NewBase 创建基础容器并初始化数据库连接
func NewBase(conf config.DatabaseConf) (*BaseContainer, error) {
	mongo, err := database.NewMongo(conf.MongoConf)
	if err != nil {
		return nil, err
	}
	redis, err := database.NewRedis(conf.RedisConf)
	if err != nil {
		_ = mongo.Close()
		return nil, err
	}

	log.Info("mongodb、redis 数据库服务启动成功")

	return &BaseContainer{
		mongo: mongo,
		redis: redis,
	}, nil
}

// GetMongo 获取 Mongo 管理器
func (c *BaseContainer) GetMongo() *database.MongoManager {
	return c.mongo
}

// GetRedis 获取 Redis 管理器
func (c *BaseContainer) GetRedis() *database.RedisManager {
	return c.redis
}

// Close 关闭所有资源
func (c *BaseContainer) Close() error {
	var errs []error
	if err := c.mongo.Close(); err != nil {
		errs = append(errs, fmt.Errorf("mongo 关闭失败: %w", err))
	}
	if err := c.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis 关闭失败: %w", err))
	}
	return errors.Join(errs...)
}
