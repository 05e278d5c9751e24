package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/datatable"
	"coursehub/internal/model"
)

// GradeRepository defines grade persistence operations.
type GradeRepository interface {
	Create(ctx context.Context, grade *model.Grade) error
	Update(ctx context.Context, grade *model.Grade) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Grade, error)
	FindByStudentAndLesson(ctx context.Context, studentID, lessonID uint) (*model.Grade, error)
	List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Grade, int64, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository builds a GORM-backed grade repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Omit("Student", "Lesson").Create(grade).Error
}

func (r *gradeRepository) Update(ctx context.Context, grade *model.Grade) error {
	return r.db.WithContext(ctx).Omit("Student", "Lesson").Save(grade).Error
}

func (r *gradeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Grade{}, id).Error
}

func (r *gradeRepository) FindByID(ctx context.Context, id uint) (*model.Grade, error) {
	var grade model.Grade
	if err := r.db.WithContext(ctx).Preload("Lesson").First(&grade, id).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) FindByStudentAndLesson(ctx context.Context, studentID, lessonID uint) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Grade, int64, error) {
	var grades []model.Grade
	total, err := datatable.Run(ctx, r.db.Model(&model.Grade{}).Preload("Lesson"), p, cfg, &grades)
	if err != nil {
		return nil, 0, err
	}
	return grades, total, nil
}
