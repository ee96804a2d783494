package dto

import "github.com/FoundlyHQ/foundly-backend/internal/core/domain"

// UserResponse is the public shape of a user account.
type UserResponse struct {
	UserID    string `json:"userID"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	LoginType string `json:"loginType"`
	Points    int    `json:"points"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		LoginType: string(user.LoginType),
		Points:    user.Points,
	}
}

// PointsResponse carries a user's reward points balance.
type PointsResponse struct {
	Points int `json:"points"`
}
