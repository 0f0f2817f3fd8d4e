package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DiD92/wwyd/common/database"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/core/domain/repository"
)

const (
	problemSeqKey      = "wwyd:problem:seq" // 题目序号
	problemSnapshotKey = "wwyd:problem"     // publicID -> JSON
)

// RedisProblemStore redis 中保存题目序号与短期快照
type RedisProblemStore struct {
	redis *database.RedisManager
}

func NewRedisProblemStore(redis *database.RedisManager) repository.ProblemSnapshotRepository {
	return &RedisProblemStore{redis: redis}
}

func (s *RedisProblemStore) NextSerial(ctx context.Context) (int64, error) {
	cli, err := s.redis.GetClient()
	if err != nil {
		return 0, err
	}
	n, err := cli.Incr(ctx, problemSeqKey).Result()
	if err != nil {
		log.Error("分配题目序号失败: %v", err)
		return 0, repository.ErrRedis
	}
	return n, nil
}

func (s *RedisProblemStore) SaveSnapshot(ctx context.Context, rec *entity.ProblemRecord, ttl time.Duration) error {
	cli, err := s.redis.GetClient()
	if err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := cli.Set(ctx, problemSnapshotKey+":"+rec.PublicID, data, ttl).Err(); err != nil {
		log.Error("保存题目快照失败: %v", err)
		return repository.ErrRedis
	}
	return nil
}

func (s *RedisProblemStore) GetSnapshot(ctx context.Context, publicID string) (*entity.ProblemRecord, error) {
	cli, err := s.redis.GetClient()
	if err != nil {
		return nil, err
	}
	data, err := cli.Get(ctx, problemSnapshotKey+":"+publicID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrProblemNotFound
		}
		log.Error("读取题目快照失败: %v", err)
		return nil, repository.ErrRedis
	}

	var rec entity.ProblemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
