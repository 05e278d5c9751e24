package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := NewConfig(
		Column{Name: "id", Prop: "id", Source: "courses", Sortable: true, Type: Integer, DefaultSort: SortAsc},
		Column{Name: "name", Prop: "name", Source: "courses", Searchable: true, Sortable: true, Type: Text},
		Column{Name: "description", Prop: "description", Source: "courses", Searchable: true, Type: Text},
		Column{Name: "createdAt", Prop: "created_at", Source: "courses", Sortable: true, Type: Date},
	)
	require.NoError(t, err)
	return cfg
}

func TestNewConfig_RejectsDuplicateNames(t *testing.T) {
	_, err := NewConfig(
		Column{Name: "name", Prop: "name", Source: "courses"},
		Column{Name: "name", Prop: "title", Source: "courses"},
	)
	assert.ErrorContains(t, err, `duplicate column "name"`)
}

func TestNewConfig_RejectsMultipleDefaultSorts(t *testing.T) {
	_, err := NewConfig(
		Column{Name: "id", Prop: "id", Source: "courses", DefaultSort: SortAsc},
		Column{Name: "name", Prop: "name", Source: "courses", DefaultSort: SortDesc},
	)
	assert.ErrorContains(t, err, "more than one column")
}

func TestValidate(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name       string
		params     Params
		wantColumn string
		wantMsg    string
	}{
		{
			name:       "unknown search column",
			params:     Params{SearchBy: "secret"},
			wantColumn: "secret",
			wantMsg:    `invalid column "secret"`,
		},
		{
			name:       "search disabled on column",
			params:     Params{SearchBy: "createdAt"},
			wantColumn: "createdAt",
			wantMsg:    `search is disabled on column "createdAt"`,
		},
		{
			name:       "unknown sort column",
			params:     Params{SortBy: "secret"},
			wantColumn: "secret",
			wantMsg:    `invalid column "secret"`,
		},
		{
			name:       "sort disabled on column",
			params:     Params{SortBy: "description"},
			wantColumn: "description",
			wantMsg:    `sort is disabled on column "description"`,
		},
		{
			name:    "invalid sort type",
			params:  Params{SortBy: "name", SortType: "SIDEWAYS"},
			wantMsg: `invalid sort type "SIDEWAYS"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.validate(tt.params)
			require.Error(t, err)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantMsg, valErr.Message)
			if tt.wantColumn != "" {
				assert.Equal(t, tt.wantColumn, valErr.Column)
			}
		})
	}
}

func TestResolve_SearchTargetsOnlyNamedColumn(t *testing.T) {
	cfg := testConfig(t)

	resolved := cfg.resolve(Params{Search: "algo", SearchBy: "name"})
	require.Len(t, resolved, 4)

	for _, rc := range resolved {
		if rc.col.Name == "name" {
			assert.Equal(t, "algo", rc.search)
		} else {
			assert.Empty(t, rc.search)
		}
	}
}

func TestResolve_DefaultSortWhenNoSortBy(t *testing.T) {
	cfg := testConfig(t)

	resolved := cfg.resolve(Params{})

	applied := 0
	for _, rc := range resolved {
		if rc.sortApply {
			applied++
			assert.Equal(t, "id", rc.col.Name)
			assert.Equal(t, SortAsc, rc.sortDir)
		}
	}
	assert.Equal(t, 1, applied)
}

func TestResolve_SortByOverridesDefault(t *testing.T) {
	cfg := testConfig(t)

	resolved := cfg.resolve(Params{SortBy: "name", SortType: SortDesc})

	for _, rc := range resolved {
		switch rc.col.Name {
		case "name":
			assert.True(t, rc.sortApply)
			assert.Equal(t, SortDesc, rc.sortDir)
		default:
			assert.False(t, rc.sortApply)
		}
	}
}

func TestResolve_SortDirectionDefaultsToAsc(t *testing.T) {
	cfg := testConfig(t)

	resolved := cfg.resolve(Params{SortBy: "name"})
	for _, rc := range resolved {
		if rc.col.Name == "name" {
			assert.Equal(t, SortAsc, rc.sortDir)
		}
	}
}

func TestResolve_DoesNotMutateConfig(t *testing.T) {
	cfg := testConfig(t)
	before := make([]Column, len(cfg.columns))
	copy(before, cfg.columns)

	cfg.resolve(Params{Search: "x", SearchBy: "name", SortBy: "createdAt", SortType: SortDesc})

	assert.Equal(t, before, cfg.columns)
}
