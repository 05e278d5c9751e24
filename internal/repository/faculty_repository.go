package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/datatable"
	"coursehub/internal/model"
)

// FacultyRepository defines faculty persistence operations.
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	Update(ctx context.Context, faculty *model.Faculty) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Faculty, error)
	FindByName(ctx context.Context, name string) (*model.Faculty, error)
	List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Faculty, int64, error)
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository builds a GORM-backed faculty repository.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) Create(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

func (r *facultyRepository) Update(ctx context.Context, faculty *model.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Faculty{}, id).Error
}

func (r *facultyRepository) FindByID(ctx context.Context, id uint) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) FindByName(ctx context.Context, name string) (*model.Faculty, error) {
	var faculty model.Faculty
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&faculty).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepository) List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Faculty, int64, error) {
	var faculties []model.Faculty
	total, err := datatable.Run(ctx, r.db.Model(&model.Faculty{}), p, cfg, &faculties)
	if err != nil {
		return nil, 0, err
	}
	return faculties, total, nil
}
