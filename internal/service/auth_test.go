package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports/mocks"
)

const authTestSecret = "0123456789abcdef0123456789abcdef"

func newAuthService(t *testing.T) (*AuthService, *mocks.MockUserRepo) {
	t.Helper()
	users := mocks.NewMockUserRepo(t)
	tokens := auth.NewManager(authTestSecret, time.Hour)
	return NewAuthService(users, tokens, newTestLogger(t)), users
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestAuthService_Register_Invalid(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Alice", Email: "", Password: "pass",
	})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = svc.Register(context.Background(), domain.RegisterInput{
		Name: "Alice", Email: "not-an-email", Password: "pass",
	})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, users := newAuthService(t)

	stored := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "s3cret-pass"),
		Role:         domain.RoleUser,
	}
	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, users := newAuthService(t)

	stored := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "s3cret-pass"),
	}
	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)
	users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ListUsers(t *testing.T) {
	svc, users := newAuthService(t)

	stored := []*domain.User{
		{ID: "u1", Email: "alice@example.com", Role: domain.RoleUser},
		{ID: "adm", Email: "root@example.com", Role: domain.RoleAdmin},
	}
	users.EXPECT().List(mock.Anything).Return(stored, nil)

	got, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAuthService_AdminLogin_RejectsUserRole(t *testing.T) {
	svc, users := newAuthService(t)

	stored := &domain.User{
		ID:           "u1",
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "s3cret-pass"),
		Role:         domain.RoleUser,
	}
	users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, _, err := svc.AdminLogin(context.Background(), "alice@example.com", "s3cret-pass")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAuthService_AdminLogin_Success(t *testing.T) {
	svc, users := newAuthService(t)

	stored := &domain.User{
		ID:           "adm",
		Email:        "root@example.com",
		PasswordHash: hashOf(t, "s3cret-pass"),
		Role:         domain.RoleAdmin,
	}
	users.EXPECT().GetByEmail(mock.Anything, "root@example.com").Return(stored, nil)

	user, token, err := svc.AdminLogin(context.Background(), "root@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)
}
