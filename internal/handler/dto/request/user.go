package request

import (
	"gearbook/internal/usecase/commands"
)

type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

func (r UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		Name:       r.Name,
		Department: r.Department,
		AvatarURL:  r.AvatarURL,
	}
}
