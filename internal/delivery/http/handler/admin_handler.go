package handler

import (
	"context"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/authz"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc      usecase.AdminUsecase
	jobs    usecase.JobUsecase
	resumes usecase.ResumeUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase, jobs usecase.JobUsecase, resumes usecase.ResumeUsecase) *AdminHandler {
	return &AdminHandler{uc: uc, jobs: jobs, resumes: resumes}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Put("/users/:id/role", h.UpdateUserRole)

	r.Get("/jobs", h.ListJobs)
	r.Put("/jobs/:id", h.UpdateJob)
	r.Post("/jobs/:id/approve", h.ApproveJob)
	r.Post("/jobs/:id/reject", h.RejectJob)

	r.Get("/resumes", h.ListResumes)
	r.Put("/resumes/:id", h.UpdateResume)
	r.Post("/resumes/:id/approve", h.ApproveResume)
	r.Post("/resumes/:id/reject", h.RejectResume)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(items))
}

func (h *AdminHandler) UpdateUserRole(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateUserRole(c.Context(), middleware.CallerFromCtx(c), id, req.Role); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *AdminHandler) ListJobs(c fiber.Ctx) error {
	items, err := h.jobs.ListAll(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(items))
}

func (h *AdminHandler) UpdateJob(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateJob(c.Context(), middleware.CallerFromCtx(c), id, req.patchInput()); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *AdminHandler) ApproveJob(c fiber.Ctx) error {
	return h.moderate(c, h.uc.ApproveJob)
}

func (h *AdminHandler) RejectJob(c fiber.Ctx) error {
	return h.moderate(c, h.uc.RejectJob)
}

func (h *AdminHandler) ListResumes(c fiber.Ctx) error {
	items, err := h.resumes.ListAll(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResumes(items))
}

func (h *AdminHandler) UpdateResume(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateResume(c.Context(), middleware.CallerFromCtx(c), id, req.patchInput()); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *AdminHandler) ApproveResume(c fiber.Ctx) error {
	return h.moderate(c, h.uc.ApproveResume)
}

func (h *AdminHandler) RejectResume(c fiber.Ctx) error {
	return h.moderate(c, h.uc.RejectResume)
}

func (h *AdminHandler) moderate(c fiber.Ctx, op func(ctx context.Context, caller authz.Caller, id int64) error) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := op(c.Context(), middleware.CallerFromCtx(c), id); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}
