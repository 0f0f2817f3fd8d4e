package wwyd

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/DiD92/wwyd/framework/mahjong"
)

const (
	DefaultComposeAttempts = 64
	DefaultAdjustRetries   = 64
)

// Options 生成器配置
type Options struct {
	Seed            int64       // 随机种子，0 表示使用当前时间
	ComposeAttempts int         // 组牌尝试次数上限
	AdjustRetries   int         // 每级向听调整时换牌失败的次数上限
	Logger          *log.Logger // nil 时不输出
}

func DefaultOptions() Options {
	return Options{
		ComposeAttempts: DefaultComposeAttempts,
		AdjustRetries:   DefaultAdjustRetries,
	}
}

// Problem 生成的何切题
type Problem struct {
	Hand     []mahjong.Tile // 13 张，已排序
	Kans     []mahjong.Tile // 暗杠另放的第四张
	Shanten  int
	Shape    HandShape // 本题实际使用的牌型
	Discards []Discard // 按进张降序
	Seed     int64     // 用同一种子的新生成器可以复现本题
}

// Generator 单线程使用，并发生成时每个 goroutine 各自创建
type Generator struct {
	opts     Options
	seed     int64
	seeds    *rand.Rand
	searcher *mahjong.Searcher
	logger   *log.Logger
}

func NewGenerator(opts Options) *Generator {
	if opts.ComposeAttempts <= 0 {
		opts.ComposeAttempts = DefaultComposeAttempts
	}
	if opts.AdjustRetries <= 0 {
		opts.AdjustRetries = DefaultAdjustRetries
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		opts:     opts,
		seed:     seed,
		seeds:    rand.New(rand.NewSource(seed)),
		searcher: mahjong.NewSearcher(),
		logger:   logger,
	}
}

// Generate 一次性生成，等价于 NewGenerator(opts).Generate(r, shanten)
func Generate(r Restrictions, shanten int, opts Options) (*Problem, error) {
	return NewGenerator(opts).Generate(r, shanten)
}

// nextSeed 第一题使用配置的种子，之后的种子由种子序列产生
func (g *Generator) nextSeed() int64 {
	seed := g.seed
	g.seed = g.seeds.Int63()
	return seed
}

// Generate 生成一道满足限制条件、向听数恰好为 shanten 的题目
func (g *Generator) Generate(r Restrictions, shanten int) (*Problem, error) {
	if shanten < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, shanten)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	seed := g.nextSeed()
	rng := rand.New(rand.NewSource(seed))

	u, err := ResolveUniverse(r, rng)
	if err != nil {
		return nil, err
	}
	base := NewPool(u)
	if total := base.TotalRemaining(); total < 14 {
		return nil, fmt.Errorf("%w: only %d tiles are allowed", ErrGenerationInfeasible, total)
	}
	eval := NewEvaluator(r, u, g.searcher)

	var (
		adjustErr      error
		adjustFailures int
	)
	for attempt := 1; attempt <= g.opts.ComposeAttempts; attempt++ {
		pool := base.Clone()
		shape := r.HandShape
		if shape == ShapeBoth {
			shape = []HandShape{ShapeRegular, ShapeIrregular}[rng.Intn(2)]
		}

		comp, err := NewComposer(r, NewAssembler(pool, u, rng), rng).Compose(shape)
		if err != nil {
			g.logger.Debugf("compose attempt %d failed: %v", attempt, err)
			continue
		}

		hand, err := NewAdjuster(pool, eval, rng, g.opts.AdjustRetries).Degrade(comp, shanten)
		if err != nil {
			g.logger.Debugf("adjust attempt %d failed: %v", attempt, err)
			adjustErr = err
			adjustFailures++
			continue
		}
		if !meetsRequirements(r, hand) {
			g.logger.Debugf("attempt %d misses a required tile category", attempt)
			continue
		}

		return &Problem{
			Hand:     hand,
			Kans:     comp.Kans,
			Shanten:  shanten,
			Shape:    shape,
			Discards: NewScorer(eval, u).Score(hand, pool),
			Seed:     seed,
		}, nil
	}
	if adjustErr != nil {
		return nil, fmt.Errorf("%w: target %d, %d of %d attempts failed while adjusting (last: %v)",
			ErrShantenUnreachable, shanten, adjustFailures, g.opts.ComposeAttempts, adjustErr)
	}
	return nil, fmt.Errorf("%w: %d compose attempts failed", ErrGenerationInfeasible, g.opts.ComposeAttempts)
}

func meetsRequirements(r Restrictions, hand []mahjong.Tile) bool {
	var suited, honor bool
	for _, t := range hand {
		if t.Type.IsHonor() {
			honor = true
		} else {
			suited = true
		}
	}
	if r.SuitTiles == Required && !suited {
		return false
	}
	if r.HonorTiles == Required && !honor {
		return false
	}
	return true
}
