package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"coursehub/internal/datatable"
)

// listQuery binds the shared list-endpoint query parameters. Limit is
// deliberately not bounded below: an explicit non-positive limit requests the
// unbounded result set.
type listQuery struct {
	Page     *int   `query:"page" validate:"omitempty,min=1"`
	Limit    *int   `query:"limit"`
	Search   string `query:"search" validate:"omitempty,min=1,max=25"`
	SearchBy string `query:"searchBy" validate:"omitempty,min=1,max=25"`
	SortBy   string `query:"sortBy" validate:"omitempty,min=1,max=25"`
	SortType string `query:"sortType" validate:"omitempty,oneof=ASC DESC"`
}

func (q listQuery) params() datatable.Params {
	return datatable.Params{
		Page:     q.Page,
		Limit:    q.Limit,
		Search:   q.Search,
		SearchBy: q.SearchBy,
		SortBy:   q.SortBy,
		SortType: datatable.SortType(q.SortType),
	}
}

func bindListQuery(c echo.Context) (datatable.Params, error) {
	var q listQuery
	if err := c.Bind(&q); err != nil {
		return datatable.Params{}, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return datatable.Params{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return q.params(), nil
}

// listResponse is the envelope every list endpoint responds with.
type listResponse[T any] struct {
	Records      []T   `json:"records"`
	TotalRecords int64 `json:"totalRecords"`
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
