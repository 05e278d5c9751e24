package datatable

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testCourse struct {
	ID          uint
	Name        string
	Description string
}

func (testCourse) TableName() string { return "courses" }

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func intPtr(v int) *int { return &v }

func TestRun_TextSearchUsesCaseInsensitiveSubstring(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `courses` WHERE LOWER(courses.name) LIKE ?")).
		WithArgs("%algo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM .courses. WHERE LOWER\(courses\.name\) LIKE \? ORDER BY courses\.id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Algorithms I").
			AddRow(2, "Algorithms II"))

	var out []testCourse
	total, err := Run(context.Background(), db.Model(&testCourse{}), Params{Search: "Algo", SearchBy: "name"}, cfg, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, out, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_IntegerSearchUsesExactEquality(t *testing.T) {
	db, mock := newMockDB(t)
	cfg, err := NewConfig(
		Column{Name: "id", Prop: "id", Source: "courses", Searchable: true, Sortable: true, Type: Integer, DefaultSort: SortAsc},
		Column{Name: "name", Prop: "name", Source: "courses", Searchable: true, Type: Text},
	)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `courses` WHERE courses.id = ?")).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM .courses. WHERE courses\.id = \?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Databases"))

	var out []testCourse
	total, err := Run(context.Background(), db.Model(&testCourse{}), Params{Search: "7", SearchBy: "id"}, cfg, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_SecondPageOffsetsPastFirst(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `courses`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM .courses. ORDER BY courses\.id ASC LIMIT .* OFFSET`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(11, "Compilers"))

	var out []testCourse
	total, err := Run(context.Background(), db.Model(&testCourse{}), Params{Page: intPtr(2), Limit: intPtr(10)}, cfg, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_ExplicitZeroLimitDisablesPagination(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `courses`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	// the record query must carry no LIMIT clause
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `courses` ORDER BY courses.id ASC") + "$").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "a").AddRow(2, "b").AddRow(3, "c"))

	var out []testCourse
	total, err := Run(context.Background(), db.Model(&testCourse{}), Params{Limit: intPtr(0)}, cfg, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, out, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_CountReflectsFilterNotPage(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `courses` WHERE LOWER(courses.name) LIKE ?")).
		WithArgs("%intro%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(14))
	mock.ExpectQuery(`SELECT \* FROM .courses. WHERE LOWER\(courses\.name\) LIKE \? ORDER BY courses\.id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Intro to CS"))

	var out []testCourse
	total, err := Run(context.Background(), db.Model(&testCourse{}), Params{Search: "intro", SearchBy: "name", Limit: intPtr(1)}, cfg, &out)
	require.NoError(t, err)
	assert.EqualValues(t, 14, total)
	assert.Len(t, out, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_RejectsUnknownColumnBeforeQuerying(t *testing.T) {
	db, mock := newMockDB(t)
	cfg := testConfig(t)

	var out []testCourse
	_, err := Run(context.Background(), db.Model(&testCourse{}), Params{Search: "x", SearchBy: "nope"}, cfg, &out)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "nope", valErr.Column)
	assert.NoError(t, mock.ExpectationsWereMet())
}
