package catalog

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
	app.Get("/api/technologies", h.getTechnologies)
	app.Get("/api/team", h.getTeam)
	app.Get("/api/case-studies", h.getCaseStudies)
}

func (h *Handler) getTechnologies(c *fiber.Ctx) error {
	return c.JSON(h.service.Technologies())
}

func (h *Handler) getTeam(c *fiber.Ctx) error {
	return c.JSON(h.service.Team())
}

func (h *Handler) getCaseStudies(c *fiber.Ctx) error {
	return c.JSON(h.service.CaseStudies())
}
