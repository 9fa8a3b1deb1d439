package converter

import (
	"medicor-backend/internal/delivery/dto"
	"medicor-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to its safe wire projection
// (the password hash never leaves the usecase layer).
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}
