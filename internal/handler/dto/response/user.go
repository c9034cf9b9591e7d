package response

import (
	"time"

	"gearbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	AvatarURL  *string   `json:"avatarUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:         v.ID,
		Name:       v.Name,
		Email:      v.Email,
		Role:       v.Role,
		Department: v.Department,
		AvatarURL:  v.AvatarURL,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(views))
	for i, v := range views {
		out[i] = FromUserView(v)
	}
	return out
}
