package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DiD92/wwyd/common/config"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/core/domain/repository"
	"github.com/DiD92/wwyd/core/infrastructure/cache"
	"github.com/DiD92/wwyd/framework/catalog"
	"github.com/DiD92/wwyd/framework/wwyd"
	"github.com/DiD92/wwyd/gate/application/dto"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ProblemService 生成、保存、查询题目
type ProblemService struct {
	catalog     *catalog.Catalog
	problems    repository.ProblemRepository
	snapshots   repository.ProblemSnapshotRepository
	cache       *cache.ProblemCache
	settings    func() config.GeneratorConf
	snapshotTTL time.Duration
}

// NewProblemService settings 每次生成时读取，配置热更新后立即生效
func NewProblemService(
	cat *catalog.Catalog,
	problems repository.ProblemRepository,
	snapshots repository.ProblemSnapshotRepository,
	problemCache *cache.ProblemCache,
	settings func() config.GeneratorConf,
	snapshotTTL time.Duration,
) *ProblemService {
	return &ProblemService{
		catalog:     cat,
		problems:    problems,
		snapshots:   snapshots,
		cache:       problemCache,
		settings:    settings,
		snapshotTTL: snapshotTTL,
	}
}

func (s *ProblemService) Generate(ctx context.Context, cmd *dto.GenerateCommand) (*entity.ProblemRecord, error) {
	if cmd.Shanten == nil {
		return nil, fmt.Errorf("%w: shanten is required", wwyd.ErrInvalidTarget)
	}
	settings := s.settings()
	if settings.MaxShanten > 0 && *cmd.Shanten > settings.MaxShanten {
		return nil, fmt.Errorf("%w: %d exceeds the limit %d", wwyd.ErrInvalidTarget, *cmd.Shanten, settings.MaxShanten)
	}

	r, err := s.restrictions(cmd)
	if err != nil {
		return nil, err
	}

	t1 := time.Now()
	problem, err := wwyd.Generate(r, *cmd.Shanten, wwyd.Options{
		Seed:            cmd.Seed,
		ComposeAttempts: settings.ComposeAttempts,
		AdjustRetries:   settings.AdjustRetries,
		Logger:          log.Logger(),
	})
	if err != nil {
		return nil, err
	}

	rec := entity.NewProblemRecord(cmd.Hand, problem)
	rec.PublicID = uuid.NewString()
	if rec.Serial, err = s.snapshots.NextSerial(ctx); err != nil {
		log.Warn("题目序号分配失败，序号记为 0: %v", err)
	}
	if err := s.problems.Save(ctx, rec); err != nil {
		return nil, err
	}
	if err := s.snapshots.SaveSnapshot(ctx, rec, s.snapshotTTL); err != nil {
		log.Warn("题目快照保存失败: %v", err)
	}
	s.cache.Set(rec)

	log.Info("生成题目 %s (%s) 向听 %d，耗时 %d ms", rec.PublicID, rec.Notation, rec.Shanten, time.Since(t1).Milliseconds())
	return rec, nil
}

func (s *ProblemService) restrictions(cmd *dto.GenerateCommand) (wwyd.Restrictions, error) {
	switch {
	case cmd.Hand != "" && cmd.Restrictions != nil:
		return wwyd.Restrictions{}, fmt.Errorf("%w: hand and restrictions are mutually exclusive", wwyd.ErrRestrictionConflict)
	case cmd.Hand != "":
		h, ok := s.catalog.Get(cmd.Hand)
		if !ok {
			return wwyd.Restrictions{}, fmt.Errorf("%w: %s", catalog.ErrHandNotFound, cmd.Hand)
		}
		// 统一使用题库里的名字
		cmd.Hand = h.Name
		return s.catalog.Restrictions(h.Name)
	case cmd.Restrictions != nil:
		return cmd.Restrictions.Resolve()
	default:
		return wwyd.Restrictions{}, fmt.Errorf("%w: either hand or restrictions is required", wwyd.ErrRestrictionConflict)
	}
}

// Get 依次查本地缓存、redis 快照、mongodb
func (s *ProblemService) Get(ctx context.Context, publicID string) (*entity.ProblemRecord, error) {
	if rec, ok := s.cache.Get(publicID); ok {
		return rec, nil
	}

	rec, err := s.snapshots.GetSnapshot(ctx, publicID)
	if err == nil {
		s.cache.Set(rec)
		return rec, nil
	}
	if !errors.Is(err, repository.ErrProblemNotFound) {
		log.Warn("读取题目快照失败，改查 mongodb: %v", err)
	}

	rec, err = s.problems.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(rec)
	return rec, nil
}

// ListByHand 某种手牌最近的题目
func (s *ProblemService) ListByHand(ctx context.Context, hand string, limit int) (*dto.ProblemListResponse, error) {
	h, ok := s.catalog.Get(hand)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrHandNotFound, hand)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	recs, err := s.problems.FindByHand(ctx, h.Name, limit)
	if err != nil {
		return nil, err
	}
	return &dto.ProblemListResponse{Hand: h.Name, Problems: recs}, nil
}

func (s *ProblemService) Hands() []dto.HandResponse {
	hands := s.catalog.List()
	out := make([]dto.HandResponse, 0, len(hands))
	for _, h := range hands {
		out = append(out, dto.NewHandResponse(h))
	}
	return out
}
