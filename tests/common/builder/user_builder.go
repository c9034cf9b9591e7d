//go:build unit

package builder

import (
	"time"

	domuser "gearbook/internal/domain/user"
	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       domuser.Role
	Department string
	AvatarURL  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewUserBuilder() *UserBuilder {
	now := time.Now()
	return &UserBuilder{
		ID:         uuid.New(),
		Name:       "Dana Smith",
		Email:      "dana.smith@university.edu",
		Role:       domuser.RoleStaff,
		Department: "Biology",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	email, err := domuser.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return domuser.NewUser(b.Name, email, b.Role, b.Department, b.AvatarURL, b.CreatedAt)
}

func (b *UserBuilder) BuildReconstructed() *domuser.User {
	email, _ := domuser.NewEmail(b.Email)
	return domuser.ReconstructUser(
		b.ID, b.Name, email, b.Role, b.Department, b.AvatarURL,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:         b.ID,
		Name:       b.Name,
		Email:      b.Email,
		Role:       b.Role.String(),
		Department: b.Department,
		AvatarURL:  b.AvatarURL,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.Role = domuser.RoleAdmin
	return b
}

func (b *UserBuilder) AsStudent() *UserBuilder {
	b.Role = domuser.RoleStudent
	return b
}
