package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/roamline/TripBooker/internal/auth"
	"github.com/roamline/TripBooker/internal/domain"
	"github.com/roamline/TripBooker/internal/service/ports"
)

type AuthService struct {
	users  ports.UserRepo
	tokens *auth.Manager
	logger logger.Logger
}

func NewAuthService(users ports.UserRepo, tokens *auth.Manager, logger logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, domain.Errf(domain.ErrMissingFields, "invalid email address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", logger.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password collapse into the same error so the response does not leak
// which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// ListUsers returns all registered accounts, for the admin panel.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// AdminLogin additionally requires the ADMIN role.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, token, err := s.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if user.Role != domain.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}
	return user, token, nil
}
