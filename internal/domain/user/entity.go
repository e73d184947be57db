package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidUsername = errors.New("username cannot be empty")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}

// User is the identity-provider side of the system. The booking core only
// consumes {id, isAdmin} through the Actor type.
type User struct {
	id        uuid.UUID
	username  string
	email     Email
	isAdmin   bool
	createdAt time.Time
}

func NewUser(username string, email Email, isAdmin bool) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}

	return &User{
		id:       uuid.New(),
		username: username,
		email:    email,
		isAdmin:  isAdmin,
	}, nil
}

func ReconstructUser(id uuid.UUID, username string, email Email, isAdmin bool, createdAt time.Time) *User {
	return &User{
		id:        id,
		username:  username,
		email:     email,
		isAdmin:   isAdmin,
		createdAt: createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) IsAdmin() bool        { return u.isAdmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }
