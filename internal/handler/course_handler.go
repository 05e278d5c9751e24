package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/internal/service"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// CourseRequest represents a course create/update payload.
type CourseRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=1024"`
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search value"
// @Param searchBy query string false "Column to search"
// @Param sortBy query string false "Column to sort"
// @Param sortType query string false "ASC or DESC"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	params, err := bindListQuery(c)
	if err != nil {
		return err
	}
	courses, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[model.Course]{Records: courses, TotalRecords: total})
}

// Get godoc
// @Summary Get course by id
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} model.Course
// @Failure 404 {object} errors.Response
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	course, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create godoc
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body CourseRequest true "Course payload"
// @Success 201 {object} model.Course
// @Failure 409 {object} errors.Response
// @Router /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.svc.Create(c.Request().Context(), &model.Course{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

// Update godoc
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body CourseRequest true "Course payload"
// @Success 200 {object} model.Course
// @Failure 404 {object} errors.Response
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.svc.Update(c.Request().Context(), id, &model.Course{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete godoc
// @Summary Delete course
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} errors.Response
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
