package v1

import (
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers collects everything the v1 API surface needs. The container builds
// the set once; routing stays free of construction concerns.
type Handlers struct {
	Auth         *handler.AuthHandler
	Company      *handler.CompanyHandler
	Job          *handler.JobHandler
	Resume       *handler.ResumeHandler
	Applications *handler.ApplicationHandler
	Saved        *handler.SavedHandler
	Admin        *handler.AdminHandler
}

func Register(r fiber.Router, h Handlers, authMw *middleware.AuthMiddleware) {
	if r == nil || authMw == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"), authMw)
	}

	// Public reads resolve the caller when a token is present; private
	// resumes depend on it.
	if h.Company != nil {
		h.Company.RegisterRoutes(
			r.Group("/companies", authMw.Optional()),
			r.Group("/companies", authMw.Middleware()),
		)
	}
	if h.Job != nil {
		h.Job.RegisterRoutes(
			r.Group("/jobs", authMw.Optional()),
			r.Group("/jobs", authMw.Middleware()),
		)
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(
			r.Group("/resumes", authMw.Optional()),
			r.Group("/resumes", authMw.Middleware()),
		)
	}

	if h.Applications != nil {
		h.Applications.RegisterRoutes(r.Group("/applications", authMw.Middleware()))
	}
	if h.Saved != nil {
		h.Saved.RegisterRoutes(r.Group("/saved", authMw.Middleware()))
	}
	if h.Admin != nil {
		h.Admin.RegisterRoutes(r.Group("/admin", authMw.Middleware()))
	}
}
