package dto

import (
	"github.com/DiD92/wwyd/core/domain/entity"
	"github.com/DiD92/wwyd/framework/catalog"
)

// GenerateCommand 生成题目请求，hand 与 restrictions 二选一
type GenerateCommand struct {
	Hand         string                  `json:"hand"`
	Restrictions *catalog.RestrictionDoc `json:"restrictions"`
	Shanten      *int                    `json:"shanten" binding:"required"`
	Seed         int64                   `json:"seed"`
}

type ProblemListResponse struct {
	Hand     string                  `json:"hand"`
	Problems []*entity.ProblemRecord `json:"problems"`
}

// HandResponse 题库中的一种手牌
type HandResponse struct {
	Name         string                 `json:"name"`
	Kanji        string                 `json:"kanji,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Restrictions catalog.RestrictionDoc `json:"restrictions"`
}

func NewHandResponse(h catalog.HandDefinition) HandResponse {
	return HandResponse{
		Name:         h.Name,
		Kanji:        h.Kanji,
		Description:  h.Description,
		Restrictions: h.Restrictions,
	}
}
