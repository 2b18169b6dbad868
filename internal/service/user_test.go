package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(12345)
	user, err := svc.Create(context.Background(), nil, domain.CreateUserInput{
		Name:           " Asha ",
		Email:          "Asha@Example.com",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, &chatID, user.TelegramChatID)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_RoleIgnoredForAnonymous(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), &domain.Session{UserID: "u1"}, domain.CreateUserInput{
		Name:  "Mallory",
		Email: "m@example.com",
		Role:  "admin",
	})

	require.NoError(t, err)
	assert.Empty(t, user.Role)
}

func TestUserService_Create_RoleHonouredForAdmin(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), &domain.Session{UserID: "a1", Role: domain.RoleAdmin}, domain.CreateUserInput{
		Name:  "Vik",
		Email: "vik@example.com",
		Role:  "paymentVerifier",
	})

	require.NoError(t, err)
	assert.Equal(t, "paymentVerifier", user.Role)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), nil, domain.CreateUserInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), nil, domain.CreateUserInput{Name: "A"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), nil, domain.CreateUserInput{Name: "A", Email: "a@b.c", Role: "root"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), nil, domain.CreateUserInput{Name: "A", Email: "a@b.c"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserService_List_AdminOnly(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.List(context.Background(), domain.Session{UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.EXPECT().List(mock.Anything).Return([]*domain.User{asha, ravi}, nil)

	users, err := svc.List(context.Background(), domain.Session{UserID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_ResolveSession(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByID(mock.Anything, "org1").
		Return(&domain.User{ID: "org1", Role: "organiser", Organisation: "Tech Club"}, nil)
	repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().GetByID(mock.Anything, "broken").Return(nil, errors.New("db error"))

	s, err := svc.ResolveSession(context.Background(), "org1")
	require.NoError(t, err)
	assert.Equal(t, domain.Session{UserID: "org1", Role: domain.RoleOrganiser}, s)

	_, err = svc.ResolveSession(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.ResolveSession(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
