package response

import "delivery-backend/internal/data/entity"

// UserResponse is the public view of an account; it never carries a password.
type UserResponse struct {
	ID         int64  `json:"id"`
	Identifier string `json:"identifier"`
}

type AuthResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user,omitempty"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Identifier: user.Identifier,
	}
}
