package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursehub/internal/auth"
	apperrors "coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// AuthService implements the credential lifecycle: login, signup, refresh
// rotation, logout and the principal resolution used by the token guards.
type AuthService interface {
	Login(ctx context.Context, email, password string) (auth.TokenPair, *model.User, error)
	SignUp(ctx context.Context, email, password, firstName, lastName string) (auth.TokenPair, *model.User, error)
	Refresh(ctx context.Context, user *model.User) (auth.TokenPair, error)
	Logout(ctx context.Context, userID uint) error
	ValidateAccessToken(ctx context.Context, claims *auth.Claims) (*model.User, error)
	ValidateRefreshToken(ctx context.Context, claims *auth.Claims, refreshToken string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	jwt    *auth.JWTService
	hasher *auth.Hasher
	log    *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, roles repository.RoleRepository, jwt *auth.JWTService, hasher *auth.Hasher, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		roles:  roles,
		jwt:    jwt,
		hasher: hasher,
		log:    log,
	}
}

// Login authenticates a user and returns a fresh token pair. Unknown email
// and wrong password fail identically so responses cannot enumerate users.
func (s *authService) Login(ctx context.Context, email, password string) (auth.TokenPair, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, nil, apperrors.ErrWrongCredentials
	}
	if !s.hasher.ComparePassword(user.PasswordHash, password) {
		return auth.TokenPair{}, nil, apperrors.ErrWrongCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return auth.TokenPair{}, nil, err
	}
	return pair, user, nil
}

// SignUp registers a new student account and logs it in.
func (s *authService) SignUp(ctx context.Context, email, password, firstName, lastName string) (auth.TokenPair, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return auth.TokenPair{}, nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.TokenPair{}, nil, fmt.Errorf("check user existence: %w", err)
	}

	role, err := s.roles.FindByName(ctx, model.RoleStudent)
	if err != nil {
		return auth.TokenPair{}, nil, fmt.Errorf("find student role: %w", err)
	}

	passwordHash, err := s.hasher.HashPassword(password)
	if err != nil {
		return auth.TokenPair{}, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		RoleID:       role.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("create user", zap.String("email", email), zap.Error(err))
		return auth.TokenPair{}, nil, fmt.Errorf("create user: %w", err)
	}
	user.Role = *role

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return auth.TokenPair{}, nil, err
	}
	return pair, user, nil
}

// Refresh re-issues a token pair for an already guard-validated principal and
// rotates the stored refresh-token hash.
func (s *authService) Refresh(ctx context.Context, user *model.User) (auth.TokenPair, error) {
	return s.issueTokens(ctx, user)
}

// Logout invalidates every outstanding refresh token of the user.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("User not found")
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.users.UpdateRefreshTokenHash(ctx, user.ID, nil); err != nil {
		s.log.Error("clear refresh token hash", zap.Uint("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("clear refresh token: %w", err)
	}
	return nil
}

// ValidateAccessToken resolves the request principal for the access guard.
func (s *authService) ValidateAccessToken(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

// ValidateRefreshToken checks the presented refresh token against the single
// stored hash and resolves the principal for the refresh guard.
func (s *authService) ValidateRefreshToken(ctx context.Context, claims *auth.Claims, refreshToken string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.RefreshTokenHash == nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !s.hasher.CompareToken(*user.RefreshTokenHash, refreshToken) {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}

// issueTokens mints a pair and rotates the stored refresh-token hash, so only
// the newest refresh token stays usable.
func (s *authService) issueTokens(ctx context.Context, user *model.User) (auth.TokenPair, error) {
	pair, err := s.jwt.GeneratePair(user.ID, user.Email, user.Role.Name)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("generate tokens: %w", err)
	}

	hash, err := s.hasher.HashToken(pair.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("hash refresh token: %w", err)
	}
	if err := s.users.UpdateRefreshTokenHash(ctx, user.ID, &hash); err != nil {
		s.log.Error("persist refresh token hash", zap.Uint("user_id", user.ID), zap.Error(err))
		return auth.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return pair, nil
}
