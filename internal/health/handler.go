package health

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/", h.root)
	app.Get("/api/hello", h.hello)
	app.Get("/test", h.testDatabase)
}

func (h *Handler) root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "AI Automation Agency Backend Running"})
}

func (h *Handler) hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello from the backend API!"})
}

func (h *Handler) testDatabase(c *fiber.Ctx) error {
	return c.JSON(h.service.Check())
}
