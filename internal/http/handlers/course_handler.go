package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"videobelajar/internal/domain"
	applog "videobelajar/internal/log"
	"videobelajar/internal/services"
)

type CourseHandler struct {
	Courses *services.CourseService
	// HideStorageErrors sends MsgInternal instead of the driver message.
	HideStorageErrors bool
}

// List godoc
//
//	@Summary	Mendapatkan semua data courses
//	@Tags		Courses
//	@Produce	json
//	@Success	200	{object}	handlers.CourseListResponse
//	@Failure	500	{object}	handlers.ErrorResponse
//	@Router		/course [get]
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.Courses.List(c.UserContext())
	if err != nil {
		return h.storageFailure(c, "course.list.fail", err, nil)
	}
	return ok(c, MsgListOK, courses)
}

// Detail godoc
//
//	@Summary	Mendapatkan course berdasarkan ID
//	@Tags		Courses
//	@Produce	json
//	@Param		id	path		integer	true	"ID course"
//	@Success	200	{object}	handlers.CourseResponse
//	@Failure	404	{object}	handlers.ErrorResponse
//	@Failure	500	{object}	handlers.ErrorResponse
//	@Router		/course/{id} [get]
func (h *CourseHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	course, err := h.Courses.Get(c.UserContext(), id)
	if errors.Is(err, services.ErrCourseNotFound) {
		return fail(c, fiber.StatusNotFound, MsgCourseNotFound)
	}
	if err != nil {
		return h.storageFailure(c, "course.get.fail", err, map[string]any{"course_id": id})
	}
	return ok(c, MsgGetOK, course)
}

// Create godoc
//
//	@Summary	Membuat course baru
//	@Tags		Courses
//	@Accept		json
//	@Produce	json
//	@Param		course	body		domain.CourseInput	true	"Data course"
//	@Success	200		{object}	handlers.EmptyResponse
//	@Failure	400		{object}	handlers.ErrorResponse
//	@Failure	500		{object}	handlers.ErrorResponse
//	@Router		/course [post]
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	in, err := decodeCourse(c)
	if err != nil {
		applog.Security(c, "course.create.bad_body", map[string]any{"err": err.Error()})
		return fail(c, fiber.StatusBadRequest, MsgBadRequest)
	}
	id, err := h.Courses.Create(c.UserContext(), in)
	if err != nil {
		return h.storageFailure(c, "course.create.fail", err, nil)
	}
	applog.Audit(c, "course.create", map[string]any{"course_id": id})
	return ok(c, MsgCreateOK, nil)
}

// Update godoc
//
//	@Summary		Mengupdate course
//	@Description	Semua kolom ditimpa; kolom yang tidak dikirim menjadi null.
//	@Tags			Courses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		integer				true	"ID course"
//	@Param			course	body		domain.CourseInput	true	"Data course"
//	@Success		200		{object}	handlers.EmptyResponse
//	@Failure		400		{object}	handlers.ErrorResponse
//	@Failure		404		{object}	handlers.ErrorResponse
//	@Failure		500		{object}	handlers.ErrorResponse
//	@Router			/course/{id} [put]
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, err := decodeCourse(c)
	if err != nil {
		applog.Security(c, "course.update.bad_body", map[string]any{"course_id": id, "err": err.Error()})
		return fail(c, fiber.StatusBadRequest, MsgBadRequest)
	}
	err = h.Courses.Update(c.UserContext(), id, in)
	if errors.Is(err, services.ErrCourseNotFound) {
		return fail(c, fiber.StatusNotFound, MsgCourseNotFound)
	}
	if err != nil {
		return h.storageFailure(c, "course.update.fail", err, map[string]any{"course_id": id})
	}
	applog.Audit(c, "course.update", map[string]any{"course_id": id})
	return ok(c, MsgUpdateOK, nil)
}

// Delete godoc
//
//	@Summary	Menghapus course
//	@Tags		Courses
//	@Produce	json
//	@Param		id	path		integer	true	"ID course"
//	@Success	200	{object}	handlers.EmptyResponse
//	@Failure	404	{object}	handlers.ErrorResponse
//	@Failure	500	{object}	handlers.ErrorResponse
//	@Router		/course/{id} [delete]
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.Courses.Delete(c.UserContext(), id)
	if errors.Is(err, services.ErrCourseNotFound) {
		return fail(c, fiber.StatusNotFound, MsgCourseNotFound)
	}
	if err != nil {
		return h.storageFailure(c, "course.delete.fail", err, map[string]any{"course_id": id})
	}
	applog.Audit(c, "course.delete", map[string]any{"course_id": id})
	return ok(c, MsgDeleteOK, nil)
}

func (h *CourseHandler) storageFailure(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	applog.Error(c, action, err, fields)
	msg := err.Error()
	if h.HideStorageErrors {
		msg = MsgInternal
	}
	return fail(c, fiber.StatusInternalServerError, msg)
}

// decodeCourse reads a JSON body. Anything that is not JSON counts as an
// empty body, so every column is written as NULL.
func decodeCourse(c *fiber.Ctx) (domain.CourseInput, error) {
	var in domain.CourseInput
	if len(c.Body()) == 0 || !c.Is("json") {
		return in, nil
	}
	if err := c.BodyParser(&in); err != nil {
		return domain.CourseInput{}, err
	}
	return in, nil
}

// Response shapes for the API docs.
type (
	CourseListResponse struct {
		Success bool            `json:"success" example:"true"`
		Message string          `json:"message" example:"sukses menampilkan semua data courses"`
		Data    []domain.Course `json:"data"`
	}
	CourseResponse struct {
		Success bool          `json:"success" example:"true"`
		Message string        `json:"message" example:"sukses menampilkan data course"`
		Data    domain.Course `json:"data"`
	}
	EmptyResponse struct {
		Success bool   `json:"success" example:"true"`
		Message string `json:"message" example:"Sukses menyimpan data"`
		Data    any    `json:"data" swaggertype:"object"`
	}
	ErrorResponse struct {
		Success bool   `json:"success" example:"false"`
		Message string `json:"message" example:"data course tidak ditemukan"`
		Data    any    `json:"data" swaggertype:"object"`
	}
)
