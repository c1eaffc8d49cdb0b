// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single registered account.
type User struct {
	ID           uuid.UUID // Unique identifier, generated by the store on creation.
	Name         string    // Display name, set at signup.
	Email        string    // Login identifier; unique across all accounts.
	PasswordHash string    // One-way bcrypt hash; the plaintext password is never stored.
	IsVerified   bool      // False at creation; flipped exactly once by email verification.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
