package handler

import (
	"errors"

	"talent-rank/internal/delivery/http/dto"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/pkg/response"
	"talent-rank/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ScoreHandler struct {
	uc *usecase.Scoring
}

func NewScoreHandler(uc *usecase.Scoring) *ScoreHandler {
	return &ScoreHandler{uc: uc}
}

func (h *ScoreHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:job_id/candidates/:candidate_id/score", h.HandleGetScore)
}

// RegisterMutationRoutes holds the endpoints that rewrite stored scores;
// callers mount them behind the reviewer gate.
func (h *ScoreHandler) RegisterMutationRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:job_id/candidates/:candidate_id/score/recompute", h.HandleRecompute)
	r.Post("/:job_id/recompute", h.HandleRecomputeJob)
}

func (h *ScoreHandler) HandleGetScore(c fiber.Ctx) error {
	candidateID, jobID, err := pairParams(c)
	if err != nil {
		return err
	}

	score, err := h.uc.GetScore(c.Context(), candidateID, jobID)
	if err != nil {
		return mapScoringError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewScoreResponse(score))
}

func (h *ScoreHandler) HandleRecompute(c fiber.Ctx) error {
	candidateID, jobID, err := pairParams(c)
	if err != nil {
		return err
	}

	score, err := h.uc.RecomputeScore(c.Context(), candidateID, jobID)
	if err != nil {
		return mapScoringError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewScoreResponse(score))
}

func (h *ScoreHandler) HandleRecomputeJob(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}

	scored, err := h.uc.RecomputeJob(c.Context(), jobID)
	if err != nil {
		return mapScoringError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.RecomputeJobResponse{JobID: jobID.String(), Scored: scored})
}

func uuidParam(c fiber.Ctx, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(key))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	return id, nil
}

func pairParams(c fiber.Ctx) (candidateID, jobID uuid.UUID, err error) {
	jobID, err = uuidParam(c, "job_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	candidateID, err = uuidParam(c, "candidate_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return candidateID, jobID, nil
}

func mapScoringError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound), errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrStaleJob):
		return middleware.NewAppError(fiber.StatusConflict, "Job is closed or deleted", nil, err)
	case errors.Is(err, usecase.ErrFrozenScore):
		return middleware.NewAppError(fiber.StatusConflict, "Score is frozen by terminal status", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
