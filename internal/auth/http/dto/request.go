// Package dto provides the request and response bodies of the /api/auth endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/quiz/internal/validation"
)

// RegisterRequest is the body of POST /api/auth/register. Field rules beyond
// presence are enforced by the use case so the CLI gets the same checks.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request field
}

// Validate checks that every field is present.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"` //nolint:gosec // request field
}

// Validate checks that both fields are present.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UsernameOrEmail, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}
