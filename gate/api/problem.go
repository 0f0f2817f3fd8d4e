package api

import (
	"errors"
	"strconv"

	"github.com/DiD92/wwyd/common/http"
	"github.com/DiD92/wwyd/common/log"
	"github.com/DiD92/wwyd/core/domain/repository"
	"github.com/DiD92/wwyd/framework/catalog"
	"github.com/DiD92/wwyd/framework/wwyd"
	"github.com/DiD92/wwyd/gate/application/dto"
	"github.com/DiD92/wwyd/gate/application/service"
)

type ProblemHandler struct {
	svc *service.ProblemService
}

func NewProblemHandler(svc *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{svc: svc}
}

// Generate POST /api/v1/problems
func (h *ProblemHandler) Generate(c *http.Context) error {
	var cmd dto.GenerateCommand
	if err := c.BindJSON(&cmd); err != nil {
		c.BadRequest("请求参数错误: " + err.Error())
		return nil
	}

	rec, err := h.svc.Generate(c.Ctx(), &cmd)
	if err != nil {
		writeError(c, err)
		return nil
	}
	c.Created(rec)
	return nil
}

// Get GET /api/v1/problems/:id
func (h *ProblemHandler) Get(c *http.Context) error {
	rec, err := h.svc.Get(c.Ctx(), c.GetParam("id"))
	if err != nil {
		writeError(c, err)
		return nil
	}
	c.Success(rec)
	return nil
}

// List GET /api/v1/problems?hand=Chinitsu&limit=20
func (h *ProblemHandler) List(c *http.Context) error {
	hand := c.GetQuery("hand")
	if hand == "" {
		c.BadRequest("缺少 hand 参数")
		return nil
	}
	limit := 0
	if raw := c.GetQuery("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.BadRequest("limit 必须是整数")
			return nil
		}
		limit = n
	}

	resp, err := h.svc.ListByHand(c.Ctx(), hand, limit)
	if err != nil {
		writeError(c, err)
		return nil
	}
	c.Success(resp)
	return nil
}

// Hands GET /api/v1/hands
func (h *ProblemHandler) Hands(c *http.Context) error {
	c.Success(h.svc.Hands())
	return nil
}

// writeError 领域错误到 HTTP 状态码
func writeError(c *http.Context, err error) {
	switch {
	case errors.Is(err, wwyd.ErrRestrictionConflict), errors.Is(err, wwyd.ErrInvalidTarget):
		c.BadRequest(err.Error())
	case errors.Is(err, catalog.ErrHandNotFound), errors.Is(err, repository.ErrProblemNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, wwyd.ErrGenerationInfeasible), errors.Is(err, wwyd.ErrShantenUnreachable):
		c.Unprocessable(err.Error())
	default:
		log.Error("请求 %s %s 失败: %v", c.Method(), c.Path(), err)
		c.InternalServerError("")
	}
}
