package cache

import (
	"fmt"
	"time"

	"github.com/DiD92/wwyd/common/cache"
	"github.com/DiD92/wwyd/core/domain/entity"
)

// ProblemCache 进程内的题目缓存，publicID -> *ProblemRecord
type ProblemCache struct {
	cache  *cache.GeneralCache
	prefix string
}

func NewProblemCache(maxCost int64, ttl time.Duration) (*ProblemCache, error) {
	generalCache, err := cache.NewGeneralCache(maxCost, ttl)
	if err != nil {
		return nil, fmt.Errorf("创建题目缓存失败: %w", err)
	}
	return &ProblemCache{cache: generalCache, prefix: "problem"}, nil
}

func (c *ProblemCache) Set(rec *entity.ProblemRecord) bool {
	if rec == nil || rec.PublicID == "" {
		return false
	}
	return c.cache.Set(c.key(rec.PublicID), rec)
}

func (c *ProblemCache) Get(publicID string) (*entity.ProblemRecord, bool) {
	v, ok := c.cache.Get(c.key(publicID))
	if !ok {
		return nil, false
	}
	rec, ok := v.(*entity.ProblemRecord)
	return rec, ok
}

// Wait 等待异步写入完成，测试中使用
func (c *ProblemCache) Wait() {
	c.cache.Wait()
}

func (c *ProblemCache) Delete(publicID string) {
	c.cache.Delete(c.key(publicID))
}

func (c *ProblemCache) Close() {
	c.cache.Close()
}

func (c *ProblemCache) key(publicID string) string {
	return c.prefix + ":" + publicID
}
