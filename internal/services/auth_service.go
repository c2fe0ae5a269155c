package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/bloghub/backend/internal/auth"
	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user together with its role associations.
	//
	// "user" parameter is used to create a new user; its ID is filled in on success.
	//
	// If some error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsernameOrEmail retrieves a user, roles included, by username or email.
	//
	// "login" parameter is matched against both the username and the email column.
	//
	// If no such user exists, repositories.ErrNotFound will be returned together with "nil" value.
	GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Method ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RoleRepository is the interface that wraps methods for Role registry access
type RoleRepository interface {
	// Method GetByName retrieves a role by its name.
	//
	// If no such role exists, repositories.ErrNotFound will be returned together with "nil" value.
	GetByName(ctx context.Context, name string) (*models.Role, error)
}

// authService implements authentication and registration
type authService struct {
	userRepo       UserRepository
	roleRepo       RoleRepository
	tokenGenerator *auth.TokenGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, roleRepo RoleRepository, tokenGenerator *auth.TokenGenerator) *authService {
	return &authService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		tokenGenerator: tokenGenerator,
	}
}

// Login verifies the credentials and issues a bearer token. Every failure
// mode maps to the same error so callers cannot tell an unknown account
// from a wrong password.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	login := strings.TrimSpace(req.UsernameOrEmail)
	if login == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, login)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.Generate(user.ID, models.Authorities(user.Roles))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// Register creates a new user with exactly one role resolved from the
// requested role name
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"username", req.Username},
		{"email", req.Email},
		{"password", req.Password},
	} {
		if strings.TrimSpace(field.value) == "" {
			return &apperrors.MissingFieldError{Field: field.name}
		}
	}

	// Both uniqueness checks run before any write; the username violation
	// wins when both fields are taken.
	usernameExists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	emailExists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if usernameExists {
		return apperrors.ErrDuplicateUsername
	}
	if emailExists {
		return apperrors.ErrDuplicateEmail
	}

	roleName := ResolveRoleName(req.Role)
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if errors.Is(err, repositories.ErrNotFound) {
		return &apperrors.RoleNotConfiguredError{Name: roleName}
	}
	if err != nil {
		return fmt.Errorf("failed to get role: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Roles:        []models.Role{*role},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// ResolveRoleName maps a requested role to a seeded role name. Only a
// case-insensitive "ADMIN" grants ROLE_ADMIN; anything else, the empty
// string included, falls back to ROLE_USER.
func ResolveRoleName(requested string) string {
	if strings.EqualFold(requested, "ADMIN") {
		return models.RoleAdmin
	}
	return models.RoleUser
}
