package app

import (
	"fmt"
	"log"
	"strings"

	"hireboard/internal/config"
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/delivery/http/routes"
	v1 "hireboard/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(c.JWT, c.Users)

	handlers := v1.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth),
		Company:      handler.NewCompanyHandler(c.Companies),
		Job:          handler.NewJobHandler(c.Jobs),
		Resume:       handler.NewResumeHandler(c.Resumes),
		Applications: handler.NewApplicationHandler(c.Applications),
		Saved:        handler.NewSavedHandler(c.Saved),
		Admin:        handler.NewAdminHandler(c.Admin, c.Jobs, c.Resumes),
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	routes.NewRegistry(health, handlers, authMw).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
