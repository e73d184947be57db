//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/jwt"
	"campsite-booking/internal/pkg/password"
	"campsite-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[string]*user.User // keyed by email
	byID   map[uuid.UUID]*user.User
	hashes map[string]string
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, string, error) {
	u, ok := f.users[email.String()]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, f.hashes[email.String()], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func setupAuth(t *testing.T) (usecase.AuthUseCase, *user.User) {
	t.Helper()

	email, err := user.NewEmail("camper@example.com")
	require.NoError(t, err)

	entity, err := user.NewUser("camper", email, false)
	require.NoError(t, err)

	hash, err := password.HashPassword("correct horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{
		users:  map[string]*user.User{email.String(): entity},
		byID:   map[uuid.UUID]*user.User{entity.ID(): entity},
		hashes: map[string]string{email.String(): hash},
	}

	return usecase.NewAuthUseCase(repo, jwt.NewService("test-secret", time.Hour)), entity
}

func TestLogin(t *testing.T) {
	uc, entity := setupAuth(t)

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		token, actual, err := uc.Login(context.Background(), "camper@example.com", "correct horse")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, entity.ID(), actual.ID())

		userID, isAdmin, err := uc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, entity.ID(), userID)
		assert.False(t, isAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), "camper@example.com", "wrong")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), "nobody@example.com", "correct horse")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, _, err := uc.Login(context.Background(), "not-an-email", "correct horse")
		require.ErrorIs(t, err, usecase.ErrInvalidCredentials)
	})
}

func TestGetCurrentUser(t *testing.T) {
	uc, entity := setupAuth(t)

	actual, err := uc.GetCurrentUser(context.Background(), entity.ID())
	require.NoError(t, err)
	assert.Equal(t, entity.ID(), actual.ID())

	_, err = uc.GetCurrentUser(context.Background(), uuid.New())
	require.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestValidateToken(t *testing.T) {
	uc, _ := setupAuth(t)

	_, _, err := uc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, usecase.ErrTokenValidation)
}
