package dto

import "github.com/deskflow/helpdesk/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Password string      `json:"password"`
}

// LoginResponse returns the signed token and the authenticated user.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}
