package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Create adds a user to the directory. The requested role is kept only when
// the caller is an admin; everyone else gets a plain account.
func (s *UserService) Create(
	ctx context.Context,
	caller *domain.Session,
	input domain.CreateUserInput,
) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !domain.IsAssignable(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	role := ""
	if caller != nil && caller.IsAdmin() {
		role = input.Role
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Role:           role,
		Organisation:   strings.TrimSpace(input.Organisation),
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, session domain.Session) ([]*domain.User, error) {
	if !session.IsAdmin() {
		return nil, domain.ErrNotAdmin
	}
	return s.repo.List(ctx)
}

// ResolveSession turns an authenticated user id into a Session.
func (s *UserService) ResolveSession(ctx context.Context, userID string) (domain.Session, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Session{}, fmt.Errorf("%w: unknown user", domain.ErrUnauthorized)
		}
		return domain.Session{}, fmt.Errorf("resolve session: %w", err)
	}

	return domain.Session{UserID: user.ID, Role: domain.ResolveRole(user)}, nil
}
