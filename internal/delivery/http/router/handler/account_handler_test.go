package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/validator"
	domainerrors "passport/internal/domain/errors"
	mockSvc "passport/internal/mocks/service"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the handler into an echo instance with the same
// validator and error handler the real server uses, so tests exercise the
// full status-code mapping.
func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAccountUsecase, *mockSvc.MockTokenService) {
	uc := mockUC.NewMockAccountUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := NewAccountHandler(uc, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.POST("/signup", h.Signup)
	e.GET("/verify-email", h.VerifyEmail)
	e.POST("/login", h.Login)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.GET("/me", h.Me, authMiddleware.Authenticate)

	return e, uc, tokenSvc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_Signup_Created(t *testing.T) {
	e, uc, _ := newTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(&usecase.SignupOutput{
			User: &usecase.UserSummary{
				ID:    userID,
				Name:  "Test User",
				Email: "test@example.com",
			},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	// The stored credential never appears in any response.
	assert.NotContains(t, rec.Body.String(), "passwordHash")
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestAccountHandler_Signup_ValidationFailed(t *testing.T) {
	e, _, _ := newTestServer(t)

	// A missing password never reaches the use case.
	rec := doJSON(e, http.MethodPost, "/signup",
		`{"name":"Test User","email":"test@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_Signup_MalformedEmail(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"name":"Test User","email":"not-an-email","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_Signup_DuplicateEmail(t *testing.T) {
	e, uc, _ := newTestServer(t)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "signup failed"))

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"name":"Test User","email":"taken@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_REGISTERED")
}

func TestAccountHandler_Signup_UnexpectedError(t *testing.T) {
	e, uc, _ := newTestServer(t)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.New("pq: connection reset by peer"))

	rec := doJSON(e, http.MethodPost, "/signup",
		`{"name":"Test User","email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Driver details stay server-side.
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAccountHandler_VerifyEmail_Success(t *testing.T) {
	e, uc, _ := newTestServer(t)

	uc.EXPECT().
		VerifyEmail(mock.Anything, "verify-token-123").
		Return(nil)

	rec := doJSON(e, http.MethodGet, "/verify-email?token=verify-token-123", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email verified successfully")
}

func TestAccountHandler_VerifyEmail_MissingToken(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/verify-email", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_VerifyEmail_InvalidLink(t *testing.T) {
	e, uc, _ := newTestServer(t)

	uc.EXPECT().
		VerifyEmail(mock.Anything, "stale-token").
		Return(errors.Wrap(domainerrors.ErrVerificationLinkInvalid, "verification failed"))

	rec := doJSON(e, http.MethodGet, "/verify-email?token=stale-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_OR_EXPIRED_LINK")
}

func TestAccountHandler_Login_Success(t *testing.T) {
	e, uc, _ := newTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			Token: "session-token",
			User: &usecase.UserSummary{
				ID:         userID,
				Email:      "test@example.com",
				IsVerified: true,
			},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"test@example.com","password":"Password123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-token")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	e, uc, _ := newTestServer(t)

	uc.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := doJSON(e, http.MethodPost, "/login",
		`{"email":"test@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/login", `{"email":"test@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_ListUsers_Success(t *testing.T) {
	e, uc, _ := newTestServer(t)

	users := []*usecase.UserSummary{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", IsVerified: true},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
	}
	uc.EXPECT().ListUsers(mock.Anything).Return(users, nil)

	rec := doJSON(e, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []*usecase.UserSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}

func TestAccountHandler_GetUser_Success(t *testing.T) {
	e, uc, _ := newTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		GetUser(mock.Anything, userID).
		Return(&usecase.UserSummary{ID: userID, Email: "test@example.com"}, nil)

	rec := doJSON(e, http.MethodGet, "/users/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAccountHandler_GetUser_NotFound(t *testing.T) {
	e, uc, _ := newTestServer(t)

	userID := uuid.New()
	uc.EXPECT().
		GetUser(mock.Anything, userID).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup failed"))

	rec := doJSON(e, http.MethodGet, "/users/"+userID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestAccountHandler_GetUser_MalformedID(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/users/not-a-uuid", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountHandler_Me_Success(t *testing.T) {
	e, uc, tokenSvc := newTestServer(t)

	userID := uuid.New()
	tokenSvc.EXPECT().ParseSessionToken("session-token").Return(userID, nil)
	uc.EXPECT().
		GetUser(mock.Anything, userID).
		Return(&usecase.UserSummary{ID: userID, Email: "test@example.com", IsVerified: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer session-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAccountHandler_Me_MissingToken(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
