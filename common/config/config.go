package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/DiD92/wwyd/common/log"
)

var (
	Conf *Config
	mu   sync.RWMutex
)

type Config struct {
	AppName      string        `mapstructure:"appName"`
	HttpPort     int           `mapstructure:"httpPort"`
	MetricPort   int           `mapstructure:"metricPort"`
	Log          LogConf       `mapstructure:"log"`
	Generator    GeneratorConf `mapstructure:"generator"`
	Catalog      CatalogConf   `mapstructure:"catalog"`
	DatabaseConf DatabaseConf  `mapstructure:"database"`
	Cache        CacheConf     `mapstructure:"cache"`
	RateLimit    RateLimitConf `mapstructure:"rateLimit"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// GeneratorConf 生成器参数，支持热更新
type GeneratorConf struct {
	ComposeAttempts int `mapstructure:"composeAttempts"`
	AdjustRetries   int `mapstructure:"adjustRetries"`
	MaxShanten      int `mapstructure:"maxShanten"` // 接口允许请求的最大向听数
}

type CatalogConf struct {
	Path string `mapstructure:"path"`
}

type DatabaseConf struct {
	MongoConf MongoConf `mapstructure:"mongo"`
	RedisConf RedisConf `mapstructure:"redis"`
}

type MongoConf struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

type RedisConf struct {
	Addr         string   `mapstructure:"addr"`
	ClusterAddrs []string `mapstructure:"clusterAddrs"`
	Password     string   `mapstructure:"password"`
	PoolSize     int      `mapstructure:"poolSize"`
	MinIdleConns int      `mapstructure:"minIdleConns"`
	Host         string   `mapstructure:"host"`
	Port         int      `mapstructure:"port"`
}

// CacheConf 本地缓存与 redis 快照
type CacheConf struct {
	MaxCost            int64 `mapstructure:"maxCost"`
	TtlSeconds         int   `mapstructure:"ttlSeconds"`
	SnapshotTtlSeconds int   `mapstructure:"snapshotTtlSeconds"`
}

// RateLimitConf /api/v1 的全局令牌桶，rate 为 0 时不限流
type RateLimitConf struct {
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("appName", "wwyd")
	v.SetDefault("httpPort", 8080)
	v.SetDefault("metricPort", 5854)
	v.SetDefault("log.level", "info")
	v.SetDefault("generator.composeAttempts", 64)
	v.SetDefault("generator.adjustRetries", 64)
	v.SetDefault("generator.maxShanten", 6)
	v.SetDefault("catalog.path", "resource/hands.toml")
	v.SetDefault("cache.maxCost", 100000)
	v.SetDefault("cache.ttlSeconds", 600)
	v.SetDefault("cache.snapshotTtlSeconds", 86400)
	v.SetDefault("rateLimit.rate", 20)
	v.SetDefault("rateLimit.burst", 40)
}

// Load 读取配置文件，环境变量可覆盖（generator.maxShanten -> GENERATOR_MAXSHANTEN）。
// 文件变化时只热更新 generator 部分。
func Load(configFile string) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件出错: %w", err)
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("解析配置文件出错: %w", err)
	}

	mu.Lock()
	Conf = cfg
	mu.Unlock()

	v.OnConfigChange(func(in fsnotify.Event) {
		next := new(Config)
		if err := v.Unmarshal(next); err != nil {
			log.Error("配置热更新失败: %v", err)
			return
		}
		mu.Lock()
		Conf.Generator = next.Generator
		mu.Unlock()
		log.Info("配置已更新 %s, generator: %+v", in.Name, next.Generator)
	})
	v.WatchConfig()
	return nil
}

// Generator 当前生成器参数
func Generator() GeneratorConf {
	mu.RLock()
	defer mu.RUnlock()
	return Conf.Generator
}
