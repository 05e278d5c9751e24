// Package datatable turns untrusted list-endpoint query parameters into safe,
// bounded GORM queries driven by a per-endpoint column configuration.
//
// Each list endpoint declares the columns a client may search or sort on via a
// Config. Request parameters referencing anything outside that declaration are
// rejected before any SQL is built.
package datatable

import (
	"errors"
	"fmt"
)

// SortType is the requested sort direction.
type SortType string

const (
	SortAsc  SortType = "ASC"
	SortDesc SortType = "DESC"
)

// ColumnType decides how a search value is matched: Text columns use a
// case-insensitive substring match, Integer and Date columns exact equality.
type ColumnType int

const (
	Text ColumnType = iota
	Integer
	Date
)

// Column declares one column a list endpoint exposes to clients.
type Column struct {
	// Name is the public key clients use in searchBy/sortBy.
	Name string
	// Prop is the underlying database column.
	Prop string
	// Source is the table the column lives on.
	Source string

	Searchable bool
	Sortable   bool
	Type       ColumnType

	// DefaultSort, when set, orders results by this column whenever the
	// request carries no sortBy. At most one column per Config may set it.
	DefaultSort SortType
}

func (c Column) qualified() string {
	return c.Source + "." + c.Prop
}

// Config is the declarative search/sort/pagination contract of one list
// endpoint. Configs are immutable after construction and safe to share
// across concurrent requests.
type Config struct {
	columns []Column
}

// NewConfig validates and builds a Config. Column names must be unique and at
// most one column may declare a default sort.
func NewConfig(cols ...Column) (Config, error) {
	seen := make(map[string]struct{}, len(cols))
	defaults := 0
	for _, col := range cols {
		if col.Name == "" || col.Prop == "" || col.Source == "" {
			return Config{}, fmt.Errorf("datatable: column %q missing name, prop or source", col.Name)
		}
		if _, dup := seen[col.Name]; dup {
			return Config{}, fmt.Errorf("datatable: duplicate column %q", col.Name)
		}
		seen[col.Name] = struct{}{}
		if col.DefaultSort != "" {
			if col.DefaultSort != SortAsc && col.DefaultSort != SortDesc {
				return Config{}, fmt.Errorf("datatable: column %q has invalid default sort %q", col.Name, col.DefaultSort)
			}
			defaults++
		}
	}
	if defaults > 1 {
		return Config{}, errors.New("datatable: more than one column declares a default sort")
	}
	return Config{columns: cols}, nil
}

// MustConfig is NewConfig that panics on error, for package-level configs.
func MustConfig(cols ...Column) Config {
	cfg, err := NewConfig(cols...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c Config) find(name string) (Column, bool) {
	for _, col := range c.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Params carries the untrusted list query parameters. Limit and Page are
// pointers so an explicitly supplied zero stays distinguishable from an
// omitted parameter: omitted means "default page size", an explicit
// non-positive limit disables pagination entirely.
type Params struct {
	Page     *int     `query:"page"`
	Limit    *int     `query:"limit"`
	Search   string   `query:"search"`
	SearchBy string   `query:"searchBy"`
	SortBy   string   `query:"sortBy"`
	SortType SortType `query:"sortType"`
}

// ValidationError reports a request referencing a column the endpoint did not
// declare, or an operation the column has disabled.
type ValidationError struct {
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func unknownColumn(name string) *ValidationError {
	return &ValidationError{Column: name, Message: fmt.Sprintf("invalid column %q", name)}
}

func disabledColumn(name, op string) *ValidationError {
	return &ValidationError{Column: name, Message: fmt.Sprintf("%s is disabled on column %q", op, name)}
}

func (c Config) validate(p Params) error {
	if p.SearchBy != "" {
		col, ok := c.find(p.SearchBy)
		if !ok {
			return unknownColumn(p.SearchBy)
		}
		if !col.Searchable {
			return disabledColumn(p.SearchBy, "search")
		}
	}
	if p.SortBy != "" {
		col, ok := c.find(p.SortBy)
		if !ok {
			return unknownColumn(p.SortBy)
		}
		if !col.Sortable {
			return disabledColumn(p.SortBy, "sort")
		}
	}
	if p.SortType != "" && p.SortType != SortAsc && p.SortType != SortDesc {
		return &ValidationError{Column: p.SortBy, Message: fmt.Sprintf("invalid sort type %q", p.SortType)}
	}
	return nil
}
