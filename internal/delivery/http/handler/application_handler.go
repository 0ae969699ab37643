package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type createApplicationRequest struct {
	JobID       int64  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}

type updateApplicationStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)
	r.Get("/job/:jobId", h.ListByJob)
	r.Put("/:id/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.CallerFromCtx(c), req.JobID, req.CoverLetter)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(created))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateStatus(c.Context(), middleware.CallerFromCtx(c), id, req.Status, req.Notes); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMine(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(items))
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByJob(c.Context(), middleware.CallerFromCtx(c), jobID)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(items))
}
