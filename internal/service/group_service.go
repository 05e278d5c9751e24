package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/internal/datatable"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

var groupColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "groups", Sortable: true, Type: datatable.Integer, DefaultSort: datatable.SortAsc},
	datatable.Column{Name: "name", Prop: "name", Source: "groups", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "facultyId", Prop: "faculty_id", Source: "groups", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "createdAt", Prop: "created_at", Source: "groups", Sortable: true, Type: datatable.Date},
)

// GroupService handles group operations.
type GroupService interface {
	List(ctx context.Context, p datatable.Params) ([]model.Group, int64, error)
	Get(ctx context.Context, id uint) (*model.Group, error)
	Create(ctx context.Context, group *model.Group) (*model.Group, error)
	Update(ctx context.Context, id uint, group *model.Group) (*model.Group, error)
	Delete(ctx context.Context, id uint) error
}

type groupService struct {
	repo      repository.GroupRepository
	faculties repository.FacultyRepository
	log       *zap.Logger
}

// NewGroupService builds a GroupService.
func NewGroupService(repo repository.GroupRepository, faculties repository.FacultyRepository, log *zap.Logger) GroupService {
	return &groupService{repo: repo, faculties: faculties, log: log}
}

func (s *groupService) List(ctx context.Context, p datatable.Params) ([]model.Group, int64, error) {
	return s.repo.List(ctx, p, groupColumns)
}

func (s *groupService) Get(ctx context.Context, id uint) (*model.Group, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Group not found")
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return group, nil
}

func (s *groupService) Create(ctx context.Context, group *model.Group) (*model.Group, error) {
	existing, err := s.repo.FindByName(ctx, group.Name)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("Group already exists")
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check group existence: %w", err)
	}

	if _, err := s.faculties.FindByID(ctx, group.FacultyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Faculty not found")
		}
		return nil, fmt.Errorf("find faculty: %w", err)
	}

	if err := s.repo.Create(ctx, group); err != nil {
		s.log.Error("create group", zap.String("name", group.Name), zap.Error(err))
		return nil, fmt.Errorf("create group: %w", err)
	}
	return group, nil
}

func (s *groupService) Update(ctx context.Context, id uint, group *model.Group) (*model.Group, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Group not found")
		}
		return nil, fmt.Errorf("find group: %w", err)
	}

	if group.FacultyID != existing.FacultyID {
		if _, err := s.faculties.FindByID(ctx, group.FacultyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("Faculty not found")
			}
			return nil, fmt.Errorf("find faculty: %w", err)
		}
	}

	existing.Name = group.Name
	existing.FacultyID = group.FacultyID
	if err := s.repo.Update(ctx, existing); err != nil {
		s.log.Error("update group", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update group: %w", err)
	}
	return existing, nil
}

func (s *groupService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Group not found")
		}
		return fmt.Errorf("find group: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("delete group", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}
