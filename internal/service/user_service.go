package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/internal/auth"
	"coursehub/internal/datatable"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

var userColumns = datatable.MustConfig(
	datatable.Column{Name: "id", Prop: "id", Source: "users", Sortable: true, Type: datatable.Integer, DefaultSort: datatable.SortAsc},
	datatable.Column{Name: "email", Prop: "email", Source: "users", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "firstName", Prop: "first_name", Source: "users", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "lastName", Prop: "last_name", Source: "users", Searchable: true, Sortable: true, Type: datatable.Text},
	datatable.Column{Name: "roleId", Prop: "role_id", Source: "users", Searchable: true, Sortable: true, Type: datatable.Integer},
	datatable.Column{Name: "createdAt", Prop: "created_at", Source: "users", Sortable: true, Type: datatable.Date},
)

// CreateUserInput is the admin-facing user creation payload.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	RoleName  string
	GroupID   *uint
	// CourseIDs enrolls a freshly created student into courses atomically
	// with the user row.
	CourseIDs []uint
}

// UpdateUserInput is the admin-facing user update payload. Email and
// password changes go through their own flows and stay out of here.
type UpdateUserInput struct {
	FirstName string
	LastName  string
	RoleName  string
	GroupID   *uint
}

// UserService handles administrative user management.
type UserService interface {
	List(ctx context.Context, p datatable.Params) ([]model.User, int64, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, in CreateUserInput) (*model.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	EnrolledCourses(ctx context.Context, studentID uint) ([]model.Course, error)
}

type userService struct {
	users   repository.UserRepository
	roles   repository.RoleRepository
	courses repository.CourseRepository
	hasher  *auth.Hasher
	log     *zap.Logger
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, roles repository.RoleRepository, courses repository.CourseRepository, hasher *auth.Hasher, log *zap.Logger) UserService {
	return &userService{users: users, roles: roles, courses: courses, hasher: hasher, log: log}
}

func (s *userService) List(ctx context.Context, p datatable.Params) ([]model.User, int64, error) {
	return s.users.List(ctx, p, userColumns)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Create registers a user with an explicit role. A student with course
// enrollments is created transactionally: if any enrollment fails the user
// row is rolled back too.
func (s *userService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	role, err := s.roles.FindByName(ctx, in.RoleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.BadRequest(fmt.Sprintf("unknown role %q", in.RoleName))
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	passwordHash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        in.Email,
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		RoleID:       role.ID,
		GroupID:      in.GroupID,
	}

	if len(in.CourseIDs) > 0 {
		err = s.users.CreateWithEnrollments(ctx, user, in.CourseIDs)
	} else {
		err = s.users.Create(ctx, user)
	}
	if err != nil {
		s.log.Error("create user", zap.String("email", in.Email), zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	user.Role = *role
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	role, err := s.roles.FindByName(ctx, in.RoleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.BadRequest(fmt.Sprintf("unknown role %q", in.RoleName))
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.RoleID = role.ID
	user.GroupID = in.GroupID
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("update user", zap.Uint("id", id), zap.Error(err))
		return nil, fmt.Errorf("update user: %w", err)
	}
	user.Role = *role
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("User not found")
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		s.log.Error("delete user", zap.Uint("id", id), zap.Error(err))
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *userService) EnrolledCourses(ctx context.Context, studentID uint) ([]model.Course, error) {
	if _, err := s.users.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return s.courses.ListEnrolled(ctx, studentID)
}
