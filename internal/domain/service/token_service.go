package service

import (
	"passport/internal/errors"

	"github.com/google/uuid"
)

// Token parse failures. The two kinds are distinguished so the endpoint
// layer can tell the user whether a link was tampered with or merely stale.
var (
	// ErrTokenInvalid reports a token that could not be parsed, carries
	// the wrong purpose, or fails signature verification.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired reports a well-formed, correctly signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// TokenService defines the interface for issuing and verifying the two kinds
// of signed, time-limited tokens the account flows need: email-verification
// tokens carrying an email claim, and session tokens carrying a user ID.
// Tokens are opaque and tamper-evident; any bit modification invalidates them.
type TokenService interface {
	// IssueVerificationToken creates a signed token binding the given email,
	// valid for the configured verification TTL.
	IssueVerificationToken(email string) (string, error)

	// ParseVerificationToken validates a verification token and returns the
	// email it was issued for. Fails with ErrTokenInvalid or ErrTokenExpired.
	ParseVerificationToken(token string) (string, error)

	// IssueSessionToken creates a signed login session token for the given
	// user, valid for the configured session TTL.
	IssueSessionToken(userID uuid.UUID) (string, error)

	// ParseSessionToken validates a session token and returns the user ID it
	// was issued for. Fails with ErrTokenInvalid or ErrTokenExpired.
	ParseSessionToken(token string) (uuid.UUID, error)
}
