package response

import (
	"time"

	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func FromUserView(v *queries.UserView) UserResponse {
	return UserResponse{
		ID:        v.ID,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		LastLogin: v.LastLogin,
	}
}
