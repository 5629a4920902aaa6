package dto

import "github.com/spec-kit/auth-service/internal/domain"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse confirms a created account. Registration never carries a
// token; the client logs in to obtain one.
type RegisterResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

// LoginResponse carries the issued session token and the account projection.
type LoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}
