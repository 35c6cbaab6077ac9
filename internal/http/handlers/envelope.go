package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "videobelajar/internal/log"
)

// Messages returned to API clients.
const (
	MsgListOK          = "sukses menampilkan semua data courses"
	MsgGetOK           = "sukses menampilkan data course"
	MsgCreateOK        = "Sukses menyimpan data"
	MsgUpdateOK        = "Sukses mengupdate data"
	MsgDeleteOK        = "Sukses menghapus data"
	MsgCourseNotFound  = "data course tidak ditemukan"
	MsgBadRequest      = "format request tidak valid"
	MsgRouteNotFound   = "endpoint tidak ditemukan"
	MsgInternal        = "terjadi kesalahan pada server"
	MsgTooManyRequests = "terlalu banyak request, coba lagi nanti"
)

// Envelope is the shape of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func ok(c *fiber.Ctx, msg string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Message: msg, Data: data})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Envelope{Success: false, Message: msg})
}

// ErrorHandler is the app-wide fallback for errors a handler returned
// instead of writing a response. Details are logged, not sent.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := MsgInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		switch {
		case status == fiber.StatusNotFound:
			msg = MsgRouteNotFound
		case status == fiber.StatusTooManyRequests:
			msg = MsgTooManyRequests
		case status < fiber.StatusInternalServerError:
			msg = fe.Message
		}
	}
	applog.Error(c, "server.error", err, map[string]any{"status": status})
	return fail(c, status, msg)
}

// NotFound answers any route nothing else matched.
func NotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, MsgRouteNotFound)
}
