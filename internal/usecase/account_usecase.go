// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// UserSummary is the outward-facing representation of an account.
// It deliberately omits the password hash.
type UserSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewUserSummary maps a domain entity to its outward representation.
func NewUserSummary(user *entity.User) *UserSummary {
	if user == nil {
		return nil
	}

	return &UserSummary{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

// SignupOutput returns the newly created account's public information.
type SignupOutput struct {
	User *UserSummary `json:"user"`
}

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Signup registers a new unverified account and dispatches a
	// verification mail.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// VerifyEmail consumes a verification token and marks the matching
	// account verified. Re-verification is rejected.
	VerifyEmail(ctx context.Context, token string) error

	// Login authenticates a verified account and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns every account.
	ListUsers(ctx context.Context) ([]*UserSummary, error)

	// GetUser returns the account with the given ID.
	GetUser(ctx context.Context, id uuid.UUID) (*UserSummary, error)
}
