package dto

import (
	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

// CreateUserRequest carries the fields needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// JoinRequestPayload asks to associate the user with a company.
type JoinRequestPayload struct {
	CompanyName string `json:"companyName" binding:"required"`
}

// UserResponse is the outward form of a user.
type UserResponse struct {
	UserID      string              `json:"userID"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	JoinRequest *domain.JoinRequest `json:"joinRequest,omitempty"`
}

// ToUserResponse converts a domain.User into its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		JoinRequest: u.JoinRequest,
	}
}

// ListUsersResponse wraps the user listing.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of users.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}
