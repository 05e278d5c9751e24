package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/internal/service"
)

// FacultyHandler handles faculty endpoints.
type FacultyHandler struct {
	svc service.FacultyService
}

// NewFacultyHandler creates a new faculty handler.
func NewFacultyHandler(svc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{svc: svc}
}

// FacultyRequest represents a faculty create/update payload.
type FacultyRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// List godoc
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search value"
// @Param searchBy query string false "Column to search"
// @Param sortBy query string false "Column to sort"
// @Param sortType query string false "ASC or DESC"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /faculties [get]
func (h *FacultyHandler) List(c echo.Context) error {
	params, err := bindListQuery(c)
	if err != nil {
		return err
	}
	faculties, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[model.Faculty]{Records: faculties, TotalRecords: total})
}

// Get godoc
// @Summary Get faculty by id
// @Tags faculties
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} model.Faculty
// @Failure 404 {object} errors.Response
// @Router /faculties/{id} [get]
func (h *FacultyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	faculty, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faculty)
}

// Create godoc
// @Summary Create faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body FacultyRequest true "Faculty payload"
// @Success 201 {object} model.Faculty
// @Failure 409 {object} errors.Response
// @Router /faculties [post]
func (h *FacultyHandler) Create(c echo.Context) error {
	var req FacultyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	faculty, err := h.svc.Create(c.Request().Context(), &model.Faculty{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, faculty)
}

// Update godoc
// @Summary Update faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body FacultyRequest true "Faculty payload"
// @Success 200 {object} model.Faculty
// @Failure 404 {object} errors.Response
// @Router /faculties/{id} [put]
func (h *FacultyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req FacultyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	faculty, err := h.svc.Update(c.Request().Context(), id, &model.Faculty{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faculty)
}

// Delete godoc
// @Summary Delete faculty
// @Tags faculties
// @Param id path int true "Faculty ID"
// @Success 204
// @Failure 404 {object} errors.Response
// @Router /faculties/{id} [delete]
func (h *FacultyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
