package container

import (
	"fmt"
	"time"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/core/domain/repository"
	"github.com/DiD92/wwyd/core/infrastructure/cache"
	"github.com/DiD92/wwyd/core/infrastructure/persistence"
	"github.com/DiD92/wwyd/framework/catalog"
)

type GateContainer struct {
	*BaseContainer

	catalog   *catalog.Catalog
	problems  repository.ProblemRepository
	snapshots repository.ProblemSnapshotRepository
	cache     *cache.ProblemCache
}

// NewGateContainer 创建 gate 服务容器
func NewGateContainer(conf *config.Config) (*GateContainer, error) {
	cat, err := catalog.Load(conf.Catalog.Path)
	if err != nil {
		return nil, err
	}

	base, err := NewBase(conf.DatabaseConf)
	if err != nil {
		return nil, fmt.Errorf("基础容器初始化失败: %w", err)
	}

	problemCache, err := cache.NewProblemCache(conf.Cache.MaxCost, time.Duration(conf.Cache.TtlSeconds)*time.Second)
	if err != nil {
		_ = base.Close()
		return nil, err
	}

	return &GateContainer{
		BaseContainer: base,
		catalog:       cat,
		problems:      persistence.NewProblemRepository(base.GetMongo()),
		snapshots:     cache.NewRedisProblemStore(base.GetRedis()),
		cache:         problemCache,
	}, nil
}

func (c *GateContainer) GetCatalog() *catalog.Catalog {
	return c.catalog
}

func (c *GateContainer) GetProblemRepository() repository.ProblemRepository {
	return c.problems
}

func (c *GateContainer) GetSnapshotRepository() repository.ProblemSnapshotRepository {
	return c.snapshots
}

func (c *GateContainer) GetProblemCache() *cache.ProblemCache {
	return c.cache
}

// Close 关闭容器资源
func (c *GateContainer) Close() error {
	c.cache.Close()
	return c.BaseContainer.Close()
}
