package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bloghub/backend/internal/apperrors"
	"github.com/bloghub/backend/internal/auth"
	"github.com/bloghub/backend/internal/models"
	"github.com/bloghub/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	user           *models.User
	getErr         error
	createErr      error
	usernameExists bool
	emailExists    bool
	existsErr      error

	created *models.User
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = 1
	m.created = user
	return nil
}

func (m *mockUserRepository) GetByUsernameOrEmail(ctx context.Context, login string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.usernameExists, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.emailExists, nil
}

// mockRoleRepository is a mock implementation of RoleRepository
type mockRoleRepository struct {
	roles map[string]*models.Role
	err   error
}

func (m *mockRoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	if m.err != nil {
		return nil, m.err
	}
	role, ok := m.roles[name]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return role, nil
}

func seededRoles() map[string]*models.Role {
	return map[string]*models.Role{
		models.RoleAdmin: {ID: 1, Name: models.RoleAdmin},
		models.RoleUser:  {ID: 2, Name: models.RoleUser},
	}
}

func testTokenGenerator() *auth.TokenGenerator {
	return auth.NewTokenGenerator("test-secret-key", time.Hour)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestNewAuthService(t *testing.T) {
	userRepo := &mockUserRepository{}
	roleRepo := &mockRoleRepository{}
	tg := testTokenGenerator()

	svc := NewAuthService(userRepo, roleRepo, tg)

	assert.NotNil(t, svc)
	assert.Equal(t, userRepo, svc.userRepo)
	assert.Equal(t, roleRepo, svc.roleRepo)
	assert.Equal(t, tg, svc.tokenGenerator)
}

func TestAuthService_Login(t *testing.T) {
	hash := ""

	tests := []struct {
		name          string
		request       *models.LoginRequest
		userRepo      *mockUserRepository
		expectedError error
	}{
		{
			name:    "success by username",
			request: &models.LoginRequest{UsernameOrEmail: "johndoe", Password: "secret123"},
			userRepo: &mockUserRepository{
				user: &models.User{ID: 5, Username: "johndoe", Roles: []models.Role{{ID: 2, Name: models.RoleUser}}},
			},
		},
		{
			name:          "empty login",
			request:       &models.LoginRequest{UsernameOrEmail: "   ", Password: "secret123"},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "empty password",
			request:       &models.LoginRequest{UsernameOrEmail: "johndoe", Password: ""},
			userRepo:      &mockUserRepository{},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "unknown user maps to invalid credentials",
			request:       &models.LoginRequest{UsernameOrEmail: "ghost", Password: "secret123"},
			userRepo:      &mockUserRepository{getErr: repositories.ErrNotFound},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:    "wrong password maps to invalid credentials",
			request: &models.LoginRequest{UsernameOrEmail: "johndoe", Password: "wrong-password"},
			userRepo: &mockUserRepository{
				user: &models.User{ID: 5, Username: "johndoe", Roles: []models.Role{{ID: 2, Name: models.RoleUser}}},
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hash == "" {
				hash = hashPassword(t, "secret123")
			}
			if tt.userRepo.user != nil {
				tt.userRepo.user.PasswordHash = hash
			}

			svc := NewAuthService(tt.userRepo, &mockRoleRepository{roles: seededRoles()}, testTokenGenerator())

			resp, err := svc.Login(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, resp)
				assert.NotEmpty(t, resp.AccessToken)
				assert.Equal(t, "Bearer", resp.TokenType)
			}
		})
	}
}

func TestAuthService_Login_TokenCarriesAuthorities(t *testing.T) {
	hash := hashPassword(t, "secret123")
	userRepo := &mockUserRepository{
		user: &models.User{
			ID:           5,
			Username:     "admin",
			PasswordHash: hash,
			Roles:        []models.Role{{ID: 1, Name: models.RoleAdmin}, {ID: 2, Name: models.RoleUser}},
		},
	}
	tg := testTokenGenerator()
	svc := NewAuthService(userRepo, &mockRoleRepository{roles: seededRoles()}, tg)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{UsernameOrEmail: "admin", Password: "secret123"})
	require.NoError(t, err)

	userID, authorities, err := tg.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 5, userID)
	assert.Equal(t, []string{models.RoleAdmin, models.RoleUser}, authorities)
}

func TestAuthService_Register(t *testing.T) {
	validRequest := func() *models.RegisterRequest {
		return &models.RegisterRequest{
			Name:     "John Doe",
			Username: "johndoe",
			Email:    "john@example.com",
			Password: "secret123",
		}
	}

	tests := []struct {
		name          string
		mutate        func(*models.RegisterRequest)
		userRepo      *mockUserRepository
		roleRepo      *mockRoleRepository
		expectedError error
		errorAs       any
		expectedField string
		expectedRole  string
	}{
		{
			name:         "success defaults to user role",
			mutate:       func(r *models.RegisterRequest) {},
			userRepo:     &mockUserRepository{},
			roleRepo:     &mockRoleRepository{roles: seededRoles()},
			expectedRole: models.RoleUser,
		},
		{
			name:         "admin role granted case-insensitively",
			mutate:       func(r *models.RegisterRequest) { r.Role = "admin" },
			userRepo:     &mockUserRepository{},
			roleRepo:     &mockRoleRepository{roles: seededRoles()},
			expectedRole: models.RoleAdmin,
		},
		{
			name:         "unknown role falls back to user role",
			mutate:       func(r *models.RegisterRequest) { r.Role = "moderator" },
			userRepo:     &mockUserRepository{},
			roleRepo:     &mockRoleRepository{roles: seededRoles()},
			expectedRole: models.RoleUser,
		},
		{
			name:          "missing name reported first",
			mutate:        func(r *models.RegisterRequest) { r.Name = ""; r.Username = "" },
			userRepo:      &mockUserRepository{},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			errorAs:       &apperrors.MissingFieldError{},
			expectedField: "name",
		},
		{
			name:          "missing email",
			mutate:        func(r *models.RegisterRequest) { r.Email = "  " },
			userRepo:      &mockUserRepository{},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			errorAs:       &apperrors.MissingFieldError{},
			expectedField: "email",
		},
		{
			name:          "missing password",
			mutate:        func(r *models.RegisterRequest) { r.Password = "" },
			userRepo:      &mockUserRepository{},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			errorAs:       &apperrors.MissingFieldError{},
			expectedField: "password",
		},
		{
			name:          "duplicate username",
			mutate:        func(r *models.RegisterRequest) {},
			userRepo:      &mockUserRepository{usernameExists: true},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:          "duplicate email",
			mutate:        func(r *models.RegisterRequest) {},
			userRepo:      &mockUserRepository{emailExists: true},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			expectedError: apperrors.ErrDuplicateEmail,
		},
		{
			name:          "username wins when both are taken",
			mutate:        func(r *models.RegisterRequest) {},
			userRepo:      &mockUserRepository{usernameExists: true, emailExists: true},
			roleRepo:      &mockRoleRepository{roles: seededRoles()},
			expectedError: apperrors.ErrDuplicateUsername,
		},
		{
			name:     "role table not seeded",
			mutate:   func(r *models.RegisterRequest) {},
			userRepo: &mockUserRepository{},
			roleRepo: &mockRoleRepository{roles: map[string]*models.Role{}},
			errorAs:  &apperrors.RoleNotConfiguredError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(tt.userRepo, tt.roleRepo, testTokenGenerator())

			req := validRequest()
			tt.mutate(req)

			err := svc.Register(context.Background(), req)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tt.userRepo.created)
			case tt.errorAs != nil:
				switch target := tt.errorAs.(type) {
				case *apperrors.MissingFieldError:
					require.ErrorAs(t, err, &target)
					assert.Equal(t, tt.expectedField, target.Field)
				case *apperrors.RoleNotConfiguredError:
					require.ErrorAs(t, err, &target)
				}
				assert.Nil(t, tt.userRepo.created)
			default:
				assert.NoError(t, err)
				require.NotNil(t, tt.userRepo.created)
				require.Len(t, tt.userRepo.created.Roles, 1)
				assert.Equal(t, tt.expectedRole, tt.userRepo.created.Roles[0].Name)
				assert.NotEqual(t, "secret123", tt.userRepo.created.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(tt.userRepo.created.PasswordHash), []byte("secret123")))
			}
		})
	}
}

func TestAuthService_Register_ChecksBothDuplicatesBeforeWrite(t *testing.T) {
	userRepo := &mockUserRepository{usernameExists: true, emailExists: true}
	svc := NewAuthService(userRepo, &mockRoleRepository{roles: seededRoles()}, testTokenGenerator())

	err := svc.Register(context.Background(), &models.RegisterRequest{
		Name: "John Doe", Username: "johndoe", Email: "john@example.com", Password: "secret123",
	})

	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)
	assert.Nil(t, userRepo.created)
}

func TestResolveRoleName(t *testing.T) {
	tests := []struct {
		requested string
		expected  string
	}{
		{"ADMIN", models.RoleAdmin},
		{"admin", models.RoleAdmin},
		{"Admin", models.RoleAdmin},
		{"", models.RoleUser},
		{"user", models.RoleUser},
		{"ROLE_ADMIN", models.RoleUser},
		{"moderator", models.RoleUser},
	}

	for _, tt := range tests {
		t.Run("requested "+tt.requested, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveRoleName(tt.requested))
		})
	}
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	userRepo := &mockUserRepository{getErr: errors.New("database error")}
	svc := NewAuthService(userRepo, &mockRoleRepository{roles: seededRoles()}, testTokenGenerator())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{UsernameOrEmail: "johndoe", Password: "secret123"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, resp)
}
