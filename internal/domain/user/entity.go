package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User profile for the equipment pool. Authentication is handled outside
// this module; only profile data lives here.
type User struct {
	id         uuid.UUID
	name       string
	email      Email
	role       Role
	department string
	avatarURL  *string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(name string, email Email, role Role, department string, avatarURL *string, now time.Time) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	return &User{
		id:         uuid.New(),
		name:       name,
		email:      email,
		role:       role,
		department: department,
		avatarURL:  avatarURL,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	role Role,
	department string,
	avatarURL *string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:         id,
		name:       name,
		email:      email,
		role:       role,
		department: department,
		avatarURL:  avatarURL,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// UpdateProfile applies a partial profile edit. Nil fields keep their
// current value.
func (u *User) UpdateProfile(name, department, avatarURL *string, now time.Time) error {
	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return ErrNameRequired
		}
		u.name = *name
	}
	if department != nil {
		u.department = *department
	}
	if avatarURL != nil {
		u.avatarURL = avatarURL
	}
	u.updatedAt = now
	return nil
}

func (u *User) Clone() *User {
	clone := *u
	if u.avatarURL != nil {
		s := *u.avatarURL
		clone.avatarURL = &s
	}
	return &clone
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) Department() string   { return u.department }
func (u *User) AvatarURL() *string   { return u.avatarURL }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
