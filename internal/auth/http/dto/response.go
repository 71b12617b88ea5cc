package dto

import (
	authDomain "github.com/allisson/quiz/internal/auth/domain"
	userDomain "github.com/allisson/quiz/internal/user/domain"
)

// RegisterResponse is returned with 201 after a successful registration.
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

// MapUserToRegisterResponse converts a newly created user.
func MapUserToRegisterResponse(user *userDomain.User) RegisterResponse {
	return RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Message:  "User registered successfully",
	}
}

// LoginResponse carries the issued token. ExpiresIn is in milliseconds.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expiresIn"`
}

// MapLoginOutputToResponse converts a login result.
func MapLoginOutputToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		TokenType: output.TokenType,
		UserID:    output.User.ID.String(),
		Username:  output.User.Username,
		Email:     output.User.Email,
		Role:      string(output.User.Role),
		ExpiresIn: output.ExpiresIn,
	}
}

// MeResponse describes the account behind the current request.
type MeResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// MapUserToMeResponse converts the caller's stored account.
func MapUserToMeResponse(user *userDomain.User) MeResponse {
	return MeResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}
