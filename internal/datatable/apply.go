package datatable

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// resolvedColumn is a per-request annotation of a declared column. Resolution
// never touches the Config itself, so package-level configs stay safe under
// concurrent requests.
type resolvedColumn struct {
	col       Column
	search    string
	sortApply bool
	sortDir   SortType
}

func (c Config) resolve(p Params) []resolvedColumn {
	out := make([]resolvedColumn, 0, len(c.columns))
	for _, col := range c.columns {
		rc := resolvedColumn{col: col}
		if p.SearchBy != "" && col.Name == p.SearchBy {
			rc.search = p.Search
		}
		switch {
		case p.SortBy == "" && col.DefaultSort != "":
			rc.sortApply = true
			rc.sortDir = col.DefaultSort
		case p.SortBy != "" && col.Name == p.SortBy:
			rc.sortApply = true
			rc.sortDir = p.SortType
			if rc.sortDir == "" {
				rc.sortDir = SortAsc
			}
		}
		out = append(out, rc)
	}
	return out
}

// Apply validates p against cfg and composes the record and count queries.
// Both share the same filter; ordering and pagination go only on the record
// query so the count always reflects the filtered set, not the page.
func Apply(db *gorm.DB, p Params, cfg Config) (records *gorm.DB, count *gorm.DB, err error) {
	if err := cfg.validate(p); err != nil {
		return nil, nil, err
	}
	resolved := cfg.resolve(p)

	filtered := applySearch(db, resolved)
	count = filtered.Session(&gorm.Session{})
	records = applySort(filtered.Session(&gorm.Session{}), resolved)
	records = applyPagination(records, p)
	return records, count, nil
}

// Run executes the composed query into dest and returns the total number of
// rows matching the filter (not the page size).
func Run(ctx context.Context, db *gorm.DB, p Params, cfg Config, dest interface{}) (int64, error) {
	records, count, err := Apply(db, p, cfg)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := count.WithContext(ctx).Count(&total).Error; err != nil {
		return 0, err
	}
	if err := records.WithContext(ctx).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func applySearch(db *gorm.DB, cols []resolvedColumn) *gorm.DB {
	for _, rc := range cols {
		if rc.search == "" {
			continue
		}
		switch rc.col.Type {
		case Text:
			db = db.Where(
				fmt.Sprintf("LOWER(%s) LIKE ?", rc.col.qualified()),
				"%"+strings.ToLower(rc.search)+"%",
			)
		default: // Integer, Date
			db = db.Where(fmt.Sprintf("%s = ?", rc.col.qualified()), rc.search)
		}
	}
	return db
}

func applySort(db *gorm.DB, cols []resolvedColumn) *gorm.DB {
	// at most one sort key is supported
	for _, rc := range cols {
		if rc.sortApply {
			return db.Order(fmt.Sprintf("%s %s", rc.col.qualified(), rc.sortDir))
		}
	}
	return db
}

func applyPagination(db *gorm.DB, p Params) *gorm.DB {
	if p.Limit != nil && *p.Limit <= 0 {
		// an explicit non-positive limit requests the unbounded result set
		return db
	}
	limit := defaultLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	page := defaultPage
	if p.Page != nil && *p.Page > 0 {
		page = *p.Page
	}
	return db.Offset((page - 1) * limit).Limit(limit)
}
