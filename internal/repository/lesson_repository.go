package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/datatable"
	"coursehub/internal/model"
)

// LessonRepository defines lesson persistence operations.
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	Update(ctx context.Context, lesson *model.Lesson) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Lesson, error)
	List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Lesson, int64, error)
}

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository builds a GORM-backed lesson repository.
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Omit("Course").Create(lesson).Error
}

func (r *lessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Omit("Course").Save(lesson).Error
}

func (r *lessonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Lesson{}, id).Error
}

func (r *lessonRepository) FindByID(ctx context.Context, id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	if err := r.db.WithContext(ctx).Preload("Course").First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepository) List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	total, err := datatable.Run(ctx, r.db.Model(&model.Lesson{}).Preload("Course"), p, cfg, &lessons)
	if err != nil {
		return nil, 0, err
	}
	return lessons, total, nil
}
