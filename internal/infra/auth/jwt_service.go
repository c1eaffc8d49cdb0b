// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/config"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// Token purposes. A verification token can never be replayed as a session
// token or vice versa: the typ claim is checked on parse.
const (
	purposeVerify  = "verify"
	purposeSession = "session"
)

// tokenClaims are the signed claims carried by both token kinds.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email,omitempty"`
	Purpose string `json:"typ"`
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Shared HMAC secret for both token kinds.
	verifyTTL  time.Duration // Time-to-live for email-verification tokens.
	sessionTTL time.Duration // Time-to-live for login session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.Auth.Secret,
		verifyTTL:  cfg.Auth.VerificationTokenTTL,
		sessionTTL: cfg.Auth.SessionTokenTTL,
	}, nil
}

// IssueVerificationToken creates a signed email-verification token.
func (s *jwtService) IssueVerificationToken(email string) (string, error) {
	return s.sign(tokenClaims{
		RegisteredClaims: s.registeredClaims(s.verifyTTL),
		Email:            email,
		Purpose:          purposeVerify,
	})
}

// ParseVerificationToken validates a verification token and returns its email claim.
func (s *jwtService) ParseVerificationToken(token string) (string, error) {
	claims, err := s.parse(token, purposeVerify)
	if err != nil {
		return "", err
	}

	if claims.Email == "" {
		return "", errors.Wrap(service.ErrTokenInvalid, "missing email claim")
	}

	return claims.Email, nil
}

// IssueSessionToken creates a signed login session token.
func (s *jwtService) IssueSessionToken(userID uuid.UUID) (string, error) {
	registered := s.registeredClaims(s.sessionTTL)
	registered.Subject = userID.String()

	return s.sign(tokenClaims{
		RegisteredClaims: registered,
		Purpose:          purposeSession,
	})
}

// ParseSessionToken validates a session token and returns its user ID.
func (s *jwtService) ParseSessionToken(token string) (uuid.UUID, error) {
	claims, err := s.parse(token, purposeSession)
	if err != nil {
		return uuid.Nil, err
	}

	userID, parseErr := uuid.Parse(claims.Subject)
	if parseErr != nil {
		return uuid.Nil, errors.Wrap(service.ErrTokenInvalid, "malformed subject claim")
	}

	return userID, nil
}

func (s *jwtService) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()

	return jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) sign(claims tokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parse validates the signature, expiry, and purpose of a token.
// Expiry is reported distinctly from every other failure so the endpoint
// layer can tell an expired link apart from a tampered one.
func (s *jwtService) parse(tokenString, purpose string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if !token.Valid {
		return nil, errors.Wrap(service.ErrTokenInvalid, "token is not valid")
	}

	if claims.Purpose != purpose {
		return nil, errors.Wrapf(service.ErrTokenInvalid, "token purpose mismatch: %s", claims.Purpose)
	}

	return claims, nil
}
