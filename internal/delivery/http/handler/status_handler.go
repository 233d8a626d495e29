package handler

import (
	"errors"

	"talent-rank/internal/delivery/http/dto"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/workflow"
	"talent-rank/internal/pkg/response"
	"talent-rank/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type StatusHandler struct {
	uc *usecase.Workflow
}

func NewStatusHandler(uc *usecase.Workflow) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:job_id/candidates/:candidate_id/status", h.HandleTransition)
	r.Post("/:job_id/auto-contact", h.HandleAutoContact)
}

func (h *StatusHandler) HandleTransition(c fiber.Ctx) error {
	candidateID, jobID, err := pairParams(c)
	if err != nil {
		return err
	}

	var req dto.StatusTransitionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid body", nil, err)
	}
	if err := req.Validate(); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid status", nil, err)
	}

	status, err := h.uc.Transition(c.Context(), candidateID, jobID, workflow.Status(req.Status), actorFromLocals(c))
	if err != nil {
		return mapWorkflowError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.StatusTransitionResponse{
		CandidateID: candidateID.String(),
		JobID:       jobID.String(),
		Status:      string(status),
	})
}

func (h *StatusHandler) HandleAutoContact(c fiber.Ctx) error {
	jobID, err := uuidParam(c, "job_id")
	if err != nil {
		return err
	}

	contacted, err := h.uc.AutoContact(c.Context(), jobID, actorFromLocals(c))
	if err != nil {
		return mapWorkflowError(err)
	}

	return response.Success(c, fiber.StatusOK, "success", dto.AutoContactResponse{
		JobID:     jobID.String(),
		Contacted: contacted,
	})
}

func actorFromLocals(c fiber.Ctx) string {
	if id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		return id.String()
	}
	return ""
}

func mapWorkflowError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound), errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
