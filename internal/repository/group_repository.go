package repository

import (
	"context"

	"gorm.io/gorm"

	"coursehub/internal/datatable"
	"coursehub/internal/model"
)

// GroupRepository defines group persistence operations.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Group, error)
	FindByName(ctx context.Context, name string) (*model.Group, error)
	List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Group, int64, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository builds a GORM-backed group repository.
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Omit("Faculty").Create(group).Error
}

func (r *groupRepository) Update(ctx context.Context, group *model.Group) error {
	return r.db.WithContext(ctx).Omit("Faculty").Save(group).Error
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Group{}, id).Error
}

func (r *groupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Preload("Faculty").First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindByName(ctx context.Context, name string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context, p datatable.Params, cfg datatable.Config) ([]model.Group, int64, error) {
	var groups []model.Group
	total, err := datatable.Run(ctx, r.db.Model(&model.Group{}).Preload("Faculty"), p, cfg, &groups)
	if err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}
