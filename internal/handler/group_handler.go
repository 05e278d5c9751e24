package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursehub/internal/model"
	"coursehub/internal/service"
)

// GroupHandler handles group endpoints.
type GroupHandler struct {
	svc service.GroupService
}

// NewGroupHandler creates a new group handler.
func NewGroupHandler(svc service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// GroupRequest represents a group create/update payload.
type GroupRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	FacultyID uint   `json:"facultyId" validate:"required,min=1"`
}

// List godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /groups [get]
func (h *GroupHandler) List(c echo.Context) error {
	params, err := bindListQuery(c)
	if err != nil {
		return err
	}
	groups, total, err := h.svc.List(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse[model.Group]{Records: groups, TotalRecords: total})
}

// Get godoc
// @Summary Get group by id
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} model.Group
// @Failure 404 {object} errors.Response
// @Router /groups/{id} [get]
func (h *GroupHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	group, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

// Create godoc
// @Summary Create group
// @Tags groups
// @Accept json
// @Produce json
// @Param request body GroupRequest true "Group payload"
// @Success 201 {object} model.Group
// @Failure 409 {object} errors.Response
// @Router /groups [post]
func (h *GroupHandler) Create(c echo.Context) error {
	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.svc.Create(c.Request().Context(), &model.Group{Name: req.Name, FacultyID: req.FacultyID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, group)
}

// Update godoc
// @Summary Update group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body GroupRequest true "Group payload"
// @Success 200 {object} model.Group
// @Failure 404 {object} errors.Response
// @Router /groups/{id} [put]
func (h *GroupHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req GroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.svc.Update(c.Request().Context(), id, &model.Group{Name: req.Name, FacultyID: req.FacultyID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

// Delete godoc
// @Summary Delete group
// @Tags groups
// @Param id path int true "Group ID"
// @Success 204
// @Failure 404 {object} errors.Response
// @Router /groups/{id} [delete]
func (h *GroupHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
