package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/datatable"
	"coursehub/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// CreateWithEnrollments creates a user and its course enrollments in one
	// transaction; any failure rolls back the whole batch.
	CreateWithEnrollments(ctx context.Context, user *model.User, courseIDs []uint) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRefreshTokenHash(ctx context.Context, id uint, hash *string) error
	List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Role", "Group").Create(user).Error
}

func (r *userRepository) CreateWithEnrollments(ctx context.Context, user *model.User, courseIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Role", "Group").Create(user).Error; err != nil {
			return err
		}
		for _, courseID := range courseIDs {
			enrollment := model.Enrollment{StudentID: user.ID, CourseID: courseID}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Role", "Group").Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateRefreshTokenHash(ctx context.Context, id uint, hash *string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("refresh_token_hash", hash).Error
}

func (r *userRepository) List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.User, int64, error) {
	var users []model.User
	total, err := datatable.Run(ctx, r.db.Model(&model.User{}).Preload("Role"), p, cfg, &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
