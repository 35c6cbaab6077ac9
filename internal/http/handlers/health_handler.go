package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "videobelajar/internal/log"
	"videobelajar/internal/repos"
)

type HealthHandler struct {
	DB *repos.DB
}

// GET /healthz
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.DB.Ping(c.UserContext()); err != nil {
		applog.Error(c, "health.db.fail", err, nil)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"ok": false})
	}
	return c.JSON(fiber.Map{"ok": true})
}
