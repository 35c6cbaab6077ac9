package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// DocsHandler serves the generated API document and a page rendering it.
type DocsHandler struct {
	// InstanceName is the swag registry entry; empty means the default.
	InstanceName string
}

// GET /api-docs
func (h *DocsHandler) UI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Render("docs", fiber.Map{
		"Title":   "Course Management API",
		"SpecURL": "/api-docs/doc.json",
	})
}

// GET /api-docs/doc.json
func (h *DocsHandler) Spec(c *fiber.Ctx) error {
	name := h.InstanceName
	if name == "" {
		name = swag.Name
	}
	doc, err := swag.ReadDoc(name)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}
