package handler

import (
	"strconv"
	"strings"

	"talent-rank/internal/delivery/http/dto"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/ranking"
	"talent-rank/internal/domain/workflow"
	"talent-rank/internal/pkg/response"
	"talent-rank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RankingHandler struct {
	uc *usecase.Ranking
}

func NewRankingHandler(uc *usecase.Ranking) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:job_id/ranking", h.HandleRanking)
}

func (h *RankingHandler) HandleRanking(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}

	filter, err := parseRankingFilter(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.RankJob(c.Context(), jobID, filter)
	if err != nil {
		return mapScoringError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewRankingResponse(entries))
}

func parseRankingFilter(c fiber.Ctx) (ranking.Filter, error) {
	var f ranking.Filter

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			s := workflow.Status(strings.TrimSpace(part))
			if !s.Valid() {
				return f, middleware.NewAppError(fiber.StatusBadRequest, "Invalid status filter", nil, nil)
			}
			f.Statuses = append(f.Statuses, s)
		}
	}

	min, err := parseQueryIntPtr(c, "min_score")
	if err != nil {
		return f, err
	}
	f.MinTotal = min

	max, err := parseQueryIntPtr(c, "max_score")
	if err != nil {
		return f, err
	}
	f.MaxTotal = max

	f.AutoQualifiedOnly = c.Query("auto_qualified") == "true"
	f.SkillToken = c.Query("skill")

	return f, nil
}

func parseQueryIntPtr(c fiber.Ctx, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return &v, nil
}
