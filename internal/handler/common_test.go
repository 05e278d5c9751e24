package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/courses?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindListQuery_AllParams(t *testing.T) {
	c := listContext(t, "page=2&limit=5&search=algo&searchBy=name&sortBy=createdAt&sortType=DESC")

	p, err := bindListQuery(c)
	require.NoError(t, err)

	require.NotNil(t, p.Page)
	assert.Equal(t, 2, *p.Page)
	require.NotNil(t, p.Limit)
	assert.Equal(t, 5, *p.Limit)
	assert.Equal(t, "algo", p.Search)
	assert.Equal(t, "name", p.SearchBy)
	assert.Equal(t, "createdAt", p.SortBy)
	assert.EqualValues(t, "DESC", p.SortType)
}

func TestBindListQuery_OmittedParamsStayNil(t *testing.T) {
	c := listContext(t, "")

	p, err := bindListQuery(c)
	require.NoError(t, err)
	assert.Nil(t, p.Page)
	assert.Nil(t, p.Limit)
}

func TestBindListQuery_ExplicitZeroLimitSurvivesBinding(t *testing.T) {
	c := listContext(t, "limit=0")

	p, err := bindListQuery(c)
	require.NoError(t, err)
	require.NotNil(t, p.Limit)
	assert.Equal(t, 0, *p.Limit)
}

func TestBindListQuery_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "page below one", query: "page=0"},
		{name: "lowercase sort type", query: "sortType=asc"},
		{name: "overlong search term", query: "search=" + strings.Repeat("a", 26)},
		{name: "non-numeric page", query: "page=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindListQuery(listContext(t, tt.query))

			var echoErr *echo.HTTPError
			require.ErrorAs(t, err, &echoErr)
			assert.Equal(t, http.StatusBadRequest, echoErr.Code)
		})
	}
}

func TestPathID(t *testing.T) {
	e := newAuthTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := pathID(c)
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		c.SetParamValues(bad)
		_, err := pathID(c)
		assert.Error(t, err, "id %q must be rejected", bad)
	}
}
