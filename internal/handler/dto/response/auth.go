package response

import (
	"time"

	"campsite-booking/internal/domain/user"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email().String(),
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt(),
	}
}
