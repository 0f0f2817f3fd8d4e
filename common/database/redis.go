package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/common/log"
)

type RedisManager struct {
	Cli        *redis.Client
	ClusterCli *redis.ClusterClient
}

// NewRedis 单机或集群，配置了 clusterAddrs 时使用集群
func NewRedis(redisConf config.RedisConf) (*RedisManager, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m := &RedisManager{}
	if len(redisConf.ClusterAddrs) == 0 {
		// 构建Redis地址
		var addr string
		if redisConf.Addr != "" {
			addr = redisConf.Addr
		} else if redisConf.Host != "" && redisConf.Port > 0 {
			addr = fmt.Sprintf("%s:%d", redisConf.Host, redisConf.Port)
		} else {
			return nil, fmt.Errorf("redis 配置出错: 缺少地址")
		}
		m.Cli = redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     redisConf.Password,
			PoolSize:     redisConf.PoolSize,
			MinIdleConns: redisConf.MinIdleConns,
		})
	} else {
		m.ClusterCli = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        redisConf.ClusterAddrs,
			Password:     redisConf.Password,
			PoolSize:     redisConf.PoolSize,
			MinIdleConns: redisConf.MinIdleConns,
		})
	}

	cli, _ := m.GetClient()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("redis 连接错误: %w", err)
	}
	return m, nil
}

func (r *RedisManager) GetClient() (redis.Cmdable, error) {
	if r.Cli != nil {
		return r.Cli, nil
	}
	if r.ClusterCli != nil {
		return r.ClusterCli, nil
	}
	return nil, fmt.Errorf("redis 客户端未初始化")
}

func (r *RedisManager) Close() error {
	if r.Cli != nil {
		if err := r.Cli.Close(); err != nil {
			log.Error("redis 关闭出错: %v", err)
			return err
		}
	}
	if r.ClusterCli != nil {
		if err := r.ClusterCli.Close(); err != nil {
			log.Error("redisCluster 关闭出错: %v", err)
			return err
		}
	}
	return nil
}
