package usecase

import (
	"context"
	"errors"

	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/pkg/jwt"
	"campsite-booking/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// TokenValidator is the narrow surface the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, bool, error)
}

type AuthUseCase interface {
	TokenValidator
	Login(ctx context.Context, email, plainPassword string) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *user.User, error) {
	parsedEmail, err := user.NewEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	entity, hashedPassword, err := a.userRepo.FindByEmail(ctx, parsedEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hashedPassword, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.IsAdmin())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, entity, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	entity, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return entity, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, bool, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, false, ErrTokenValidation
	}

	return claims.UserID, claims.IsAdmin, nil
}
