package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/company"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

type createCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
	BannerURL   string `json:"banner_url"`
	Location    string `json:"location"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
	BannerURL   *string `json:"banner_url"`
	Location    *string `json:"location"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"company_size"`
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes wires the company endpoints. The protected group goes first
// so "/mine" wins over the public ":id" wildcard.
func (h *CompanyHandler) RegisterRoutes(public, protected fiber.Router) {
	if protected != nil {
		protected.Post("/", h.Create)
		protected.Get("/mine", h.ListMine)
		protected.Put("/:id", h.Update)
	}
	if public != nil {
		public.Get("/", h.List)
		public.Get("/:id", h.GetByID)
	}
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var req createCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), middleware.CallerFromCtx(c), usecase.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Location:    req.Location,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompany(created))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	patch := company.Patch{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Location:    req.Location,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
	}

	if err := h.uc.Update(c.Context(), middleware.CallerFromCtx(c), id, patch); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, response.Ack{Success: true})
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	found, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompany(found))
}

func (h *CompanyHandler) ListMine(c fiber.Ctx) error {
	items, err := h.uc.ListMine(c.Context(), middleware.CallerFromCtx(c))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompanies(items))
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompanies(items))
}
