package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SavedHandler struct {
	uc usecase.SavedUsecase
}

type createSavedSearchRequest struct {
	Name         string `json:"name"`
	SearchParams string `json:"search_params"`
}

type saveCandidateRequest struct {
	Notes string `json:"notes"`
}

type savedStatusResponse struct {
	Saved bool `json:"saved"`
}

func NewSavedHandler(uc usecase.SavedUsecase) *SavedHandler {
	return &SavedHandler{uc: uc}
}

func (h *SavedHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	jobs := r.Group("/jobs")
	jobs.Get("/", h.ListSavedJobs)
	jobs.Post("/:jobId", h.SaveJob)
	jobs.Delete("/:jobId", h.UnsaveJob)
	jobs.Get("/:jobId/status", h.JobStatus)

	searches := r.Group("/searches")
	searches.Get("/", h.ListSearches)
	searches.Post("/", h.CreateSearch)
	searches.Delete("/:id", h.DeleteSearch)

	candidates := r.Group("/candidates")
	candidates.Get("/", h.ListSavedCandidates)
	candidates.Post("/:candidateId", h.SaveCandidate)
	candidates.Delete("/:candidateId", h.UnsaveCandidate)
	candidates.Get("/:candidateId/status", h.CandidateStatus)
}

func (h *SavedHandler) SaveJob(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.SaveJob(c.Context(), middleware.CallerFromCtx(c), jobID); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *SavedHandler) UnsaveJob(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	if err := h.uc.UnsaveJob(c.Context(), middleware.CallerFromCtx(c), jobID); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *SavedHandler) ListSavedJobs(c fiber.Ctx) error {
	items, err := h.uc.ListSavedJobs(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSavedJobs(items))
}

func (h *SavedHandler) JobStatus(c fiber.Ctx) error {
	jobID, err := pathID(c, "jobId")
	if err != nil {
		return err
	}

	ok, err := h.uc.IsJobSaved(c.Context(), middleware.CallerFromCtx(c), jobID)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, savedStatusResponse{Saved: ok})
}

func (h *SavedHandler) CreateSearch(c fiber.Ctx) error {
	var req createSavedSearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateSearch(c.Context(), middleware.CallerFromCtx(c), req.Name, req.SearchParams)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSavedSearch(created))
}

func (h *SavedHandler) ListSearches(c fiber.Ctx) error {
	items, err := h.uc.ListSearches(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSavedSearches(items))
}

func (h *SavedHandler) DeleteSearch(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSearch(c.Context(), middleware.CallerFromCtx(c), id); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *SavedHandler) SaveCandidate(c fiber.Ctx) error {
	candidateID, err := pathID(c, "candidateId")
	if err != nil {
		return err
	}

	// Notes are optional; an empty body is a save without notes.
	var req saveCandidateRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	if err := h.uc.SaveCandidate(c.Context(), middleware.CallerFromCtx(c), candidateID, req.Notes); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *SavedHandler) UnsaveCandidate(c fiber.Ctx) error {
	candidateID, err := pathID(c, "candidateId")
	if err != nil {
		return err
	}

	if err := h.uc.UnsaveCandidate(c.Context(), middleware.CallerFromCtx(c), candidateID); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *SavedHandler) ListSavedCandidates(c fiber.Ctx) error {
	items, err := h.uc.ListSavedCandidates(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSavedCandidates(items))
}

func (h *SavedHandler) CandidateStatus(c fiber.Ctx) error {
	candidateID, err := pathID(c, "candidateId")
	if err != nil {
		return err
	}

	ok, err := h.uc.IsCandidateSaved(c.Context(), middleware.CallerFromCtx(c), candidateID)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, savedStatusResponse{Saved: ok})
}
