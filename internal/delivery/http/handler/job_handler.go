package handler

import (
	"time"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/job"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	CompanyID       int64      `json:"company_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	JobType         string     `json:"job_type"`
	ExperienceLevel string     `json:"experience_level"`
	SalaryMin       *int64     `json:"salary_min"`
	SalaryMax       *int64     `json:"salary_max"`
	SalaryCurrency  string     `json:"salary_currency"`
	Skills          string     `json:"skills"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type updateJobRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	JobType         *string    `json:"job_type"`
	ExperienceLevel *string    `json:"experience_level"`
	SalaryMin       *int64     `json:"salary_min"`
	SalaryMax       *int64     `json:"salary_max"`
	SalaryCurrency  *string    `json:"salary_currency"`
	Skills          *string    `json:"skills"`
	Status          *string    `json:"status"`
	IsFeatured      *bool      `json:"is_featured"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

func (r updateJobRequest) patchInput() usecase.JobPatchInput {
	return usecase.JobPatchInput{
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		JobType:         r.JobType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryCurrency:  r.SalaryCurrency,
		Skills:          r.Skills,
		Status:          r.Status,
		IsFeatured:      r.IsFeatured,
		ExpiresAt:       r.ExpiresAt,
	}
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires the job endpoints. The protected group goes first so
// "/mine" wins over the public ":id" wildcard.
func (h *JobHandler) RegisterRoutes(public, protected fiber.Router) {
	if protected != nil {
		protected.Post("/", h.Create)
		protected.Get("/mine", h.ListMine)
		protected.Put("/:id", h.Update)
	}
	if public != nil {
		public.Get("/", h.ListActive)
		public.Get("/:id", h.GetByID)
	}
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.CallerFromCtx(c), usecase.CreateJobInput{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		Skills:          req.Skills,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(created))
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), middleware.CallerFromCtx(c), id, req.patchInput()); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(found))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMine(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(items))
}

func (h *JobHandler) ListActive(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context(), job.Filter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(items))
}
