package wwyd

import "errors"

var (
	// 限制条件互相矛盾，无法构成任何手牌
	ErrRestrictionConflict = errors.New("restriction conflict")
	// 牌池中没有可以组成该组的牌
	ErrPoolExhausted = errors.New("tile pool exhausted")
	// 所有组牌尝试都失败
	ErrGenerationInfeasible = errors.New("generation infeasible")
	// 无法把手牌调整到目标向听数
	ErrShantenUnreachable = errors.New("shanten unreachable")
	ErrInvalidTarget      = errors.New("invalid target shanten")
)
