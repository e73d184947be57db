package repository

import (
	"context"
	"errors"
	"time"

	"campsite-booking/internal/domain/user"
	"campsite-booking/internal/infra"
	"campsite-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findUserByEmailSQL = `
SELECT id, username, email, password_hash, is_admin, created_at
FROM users
WHERE email = $1
`

const findUserByIDSQL = `
SELECT id, username, email, is_admin, created_at
FROM users
WHERE id = $1
`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

// FindByEmail returns the user together with the stored password hash; the
// hash never leaves the auth usecase.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, string, error) {
	var (
		id           uuid.UUID
		username     string
		emailValue   string
		passwordHash string
		isAdmin      bool
		createdAt    time.Time
	)

	err := r.db.QueryRow(ctx, findUserByEmailSQL, email.String()).Scan(
		&id, &username, &emailValue, &passwordHash, &isAdmin, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return user.ReconstructUser(id, username, email, isAdmin, createdAt), passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var (
		userID     uuid.UUID
		username   string
		emailValue string
		isAdmin    bool
		createdAt  time.Time
	)

	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&userID, &username, &emailValue, &isAdmin, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	email, emailErr := user.NewEmail(emailValue)
	if emailErr != nil {
		return nil, infra.WrapRepoErr("stored email is malformed", emailErr)
	}

	return user.ReconstructUser(userID, username, email, isAdmin, createdAt), nil
}
