package repository

import (
	"context"
	"time"

	"github.com/DiD92/wwyd/core/domain/entity"
)

// ProblemRepository 题目持久化仓储接口
type ProblemRepository interface {
	// Save 保存题目，成功后回填 ID
	Save(ctx context.Context, rec *entity.ProblemRecord) error

	// FindByPublicID 根据对外 ID 查找
	FindByPublicID(ctx context.Context, publicID string) (*entity.ProblemRecord, error)

	// FindByHand 查找某种手牌最近生成的题目
	FindByHand(ctx context.Context, handName string, limit int) ([]*entity.ProblemRecord, error)
}

// ProblemSnapshotRepository 题目的短期快照与序号
type ProblemSnapshotRepository interface {
	// NextSerial 分配递增的题目序号
	NextSerial(ctx context.Context) (int64, error)

	SaveSnapshot(ctx context.Context, rec *entity.ProblemRecord, ttl time.Duration) error

	GetSnapshot(ctx context.Context, publicID string) (*entity.ProblemRecord, error)
}
