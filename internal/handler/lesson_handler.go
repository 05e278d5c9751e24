package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/internal/service"
)

// LessonHandler handles lesson endpoints.
type LessonHandler struct {
	svc service.LessonService
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(svc service.LessonService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

// LessonRequest represents a lesson create/update payload.
type LessonRequest struct {
	Title    string    `json:"title" validate:"required,max=255"`
	CourseID uint      `json:"courseId" validate:"required,min=1"`
	StartsAt time.Time `json:"startsAt" validate:"required"`
}

// List godoc
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /lessons [get]
func (h *LessonHandler) List(c echo.Context) error {
	params, err := bindListQuery(c)
	if err != nil {
		return err
	}
	lessons, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[model.Lesson]{Records: lessons, TotalRecords: total})
}

// Get godoc
// @Summary Get lesson by id
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} errors.Response
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	lesson, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lesson)
}

// Create godoc
// @Summary Create lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param request body LessonRequest true "Lesson payload"
// @Success 201 {object} model.Lesson
// @Failure 404 {object} errors.Response
// @Router /lessons [post]
func (h *LessonHandler) Create(c echo.Context) error {
	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson, err := h.svc.Create(c.Request().Context(), &model.Lesson{
		Title:    req.Title,
		CourseID: req.CourseID,
		StartsAt: req.StartsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lesson)
}

// Update godoc
// @Summary Update lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param request body LessonRequest true "Lesson payload"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} errors.Response
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lesson, err := h.svc.Update(c.Request().Context(), id, &model.Lesson{
		Title:    req.Title,
		CourseID: req.CourseID,
		StartsAt: req.StartsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lesson)
}

// Delete godoc
// @Summary Delete lesson
// @Tags lessons
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 404 {object} errors.Response
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
