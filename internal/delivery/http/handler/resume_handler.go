package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/resume"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeUsecase
}

type createResumeRequest struct {
	Headline       string `json:"headline"`
	Summary        string `json:"summary"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	Location       string `json:"location"`
	PhoneNumber    string `json:"phone_number"`
	LinkedinURL    string `json:"linkedin_url"`
	PortfolioURL   string `json:"portfolio_url"`
	PhotoURL       string `json:"photo_url"`
	Visibility     string `json:"visibility"`
}

type updateResumeRequest struct {
	Headline       *string `json:"headline"`
	Summary        *string `json:"summary"`
	Experience     *string `json:"experience"`
	Education      *string `json:"education"`
	Skills         *string `json:"skills"`
	Certifications *string `json:"certifications"`
	Location       *string `json:"location"`
	PhoneNumber    *string `json:"phone_number"`
	LinkedinURL    *string `json:"linkedin_url"`
	PortfolioURL   *string `json:"portfolio_url"`
	PhotoURL       *string `json:"photo_url"`
	Visibility     *string `json:"visibility"`
	Status         *string `json:"status"`
}

func (r updateResumeRequest) patchInput() usecase.ResumePatchInput {
	return usecase.ResumePatchInput{
		Headline:       r.Headline,
		Summary:        r.Summary,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Certifications: r.Certifications,
		Location:       r.Location,
		PhoneNumber:    r.PhoneNumber,
		LinkedinURL:    r.LinkedinURL,
		PortfolioURL:   r.PortfolioURL,
		PhotoURL:       r.PhotoURL,
		Visibility:     r.Visibility,
		Status:         r.Status,
	}
}

func NewResumeHandler(uc usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

// RegisterRoutes wires the resume endpoints. "/mine" registers ahead of the
// ":id" wildcard; resume detail requires the optional-auth caller so private
// resumes stay hidden.
func (h *ResumeHandler) RegisterRoutes(public, protected fiber.Router) {
	if protected != nil {
		protected.Post("/", h.Create)
		protected.Get("/mine", h.GetMine)
		protected.Put("/:id", h.Update)
	}
	if public != nil {
		public.Get("/", h.ListPublic)
		public.Get("/:id", h.GetByID)
	}
}

func (h *ResumeHandler) Create(c fiber.Ctx) error {
	var req createResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.CallerFromCtx(c), usecase.CreateResumeInput{
		Headline:       req.Headline,
		Summary:        req.Summary,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Location:       req.Location,
		PhoneNumber:    req.PhoneNumber,
		LinkedinURL:    req.LinkedinURL,
		PortfolioURL:   req.PortfolioURL,
		PhotoURL:       req.PhotoURL,
		Visibility:     req.Visibility,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(created))
}

func (h *ResumeHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Update(c.Context(), middleware.CallerFromCtx(c), id, req.patchInput()); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *ResumeHandler) GetMine(c fiber.Ctx) error {
	found, err := h.uc.GetMine(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(found))
}

func (h *ResumeHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetByID(c.Context(), middleware.CallerFromCtx(c), id)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResume(found))
}

func (h *ResumeHandler) ListPublic(c fiber.Ctx) error {
	items, err := h.uc.ListPublic(c.Context(), resume.Filter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResumes(items))
}
