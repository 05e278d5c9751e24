package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/internal/service"
)

// GradeHandler handles grade endpoints.
type GradeHandler struct {
	svc service.GradeService
}

// NewGradeHandler creates a new grade handler.
func NewGradeHandler(svc service.GradeService) *GradeHandler {
	return &GradeHandler{svc: svc}
}

// GradeCreateRequest represents a grade create payload.
type GradeCreateRequest struct {
	StudentID uint `json:"studentId" validate:"required,min=1"`
	LessonID  uint `json:"lessonId" validate:"required,min=1"`
	Value     int  `json:"value" validate:"min=0,max=100"`
}

// GradeUpdateRequest represents a grade update payload.
type GradeUpdateRequest struct {
	Value int `json:"value" validate:"min=0,max=100"`
}

// List godoc
// @Summary List grades
// @Tags grades
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /grades [get]
func (h *GradeHandler) List(c echo.Context) error {
	params, err := bindListQuery(c)
	if err != nil {
		return err
	}
	grades, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[model.Grade]{Records: grades, TotalRecords: total})
}

// Get godoc
// @Summary Get grade by id
// @Tags grades
// @Produce json
// @Param id path int true "Grade ID"
// @Success 200 {object} model.Grade
// @Failure 404 {object} errors.Response
// @Router /grades/{id} [get]
func (h *GradeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	grade, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grade)
}

// Create godoc
// @Summary Create grade
// @Tags grades
// @Accept json
// @Produce json
// @Param request body GradeCreateRequest true "Grade payload"
// @Success 201 {object} model.Grade
// @Failure 409 {object} errors.Response
// @Router /grades [post]
func (h *GradeHandler) Create(c echo.Context) error {
	var req GradeCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grade, err := h.svc.Create(c.Request().Context(), &model.Grade{
		StudentID: req.StudentID,
		LessonID:  req.LessonID,
		Value:     req.Value,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, grade)
}

// Update godoc
// @Summary Update grade value
// @Tags grades
// @Accept json
// @Produce json
// @Param id path int true "Grade ID"
// @Param request body GradeUpdateRequest true "Grade payload"
// @Success 200 {object} model.Grade
// @Failure 404 {object} errors.Response
// @Router /grades/{id} [put]
func (h *GradeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req GradeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grade, err := h.svc.Update(c.Request().Context(), id, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grade)
}

// Delete godoc
// @Summary Delete grade
// @Tags grades
// @Param id path int true "Grade ID"
// @Success 204
// @Failure 404 {object} errors.Response
// @Router /grades/{id} [delete]
func (h *GradeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
