package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mailDispatchWait = 2 * time.Second

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	assignedID := uuid.New()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Name, user.Name)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.False(t, user.IsVerified)
			user.ID = assignedID
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		IssueVerificationToken(input.Email).
		Return("verify-token-123", nil)

	mailSent := make(chan struct{})
	fx.mailSender.EXPECT().
		Send(mock.Anything, input.Email, "Verify your email address", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			assert.Contains(t, body, testVerifyBaseURL+"/verify-email?token=verify-token-123")
			close(mailSent)
		}).
		Return(nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, assignedID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.False(t, output.User.IsVerified)

	select {
	case <-mailSent:
	case <-time.After(mailDispatchWait):
		t.Fatal("verification mail was never dispatched")
	}
}

func TestAccountService_Signup_MailFailureStillSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueVerificationToken(input.Email).
		Return("verify-token-123", nil)

	mailAttempted := make(chan struct{})
	fx.mailSender.EXPECT().
		Send(mock.Anything, input.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, subject, body string) {
			close(mailAttempted)
		}).
		Return(errors.New("smtp connection refused"))

	output, err := fx.service.Signup(ctx, input)

	// The account is persisted before notification; a failed delivery must
	// not surface to the caller.
	require.NoError(t, err)
	assert.NotNil(t, output)

	select {
	case <-mailAttempted:
	case <-time.After(mailDispatchWait):
		t.Fatal("verification mail was never attempted")
	}
}

func TestAccountService_Signup_TokenIssueFailureStillSucceeds(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenService.EXPECT().
		IssueVerificationToken(input.Email).
		Return("", errors.New("signing failed"))

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	email := "test@example.com"
	existingUser := &entity.User{
		ID:         uuid.New(),
		Email:      email,
		IsVerified: false,
	}

	fx.tokenService.EXPECT().
		ParseVerificationToken("verify-token-123").
		Return(email, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, email).Return(existingUser, nil)
		mockUserRepo.EXPECT().
			Save(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.True(t, user.IsVerified)
			}).
			Return(nil)
	})

	err := fx.service.VerifyEmail(ctx, "verify-token-123")

	require.NoError(t, err)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	existingUser := &entity.User{
		ID:           userID,
		Name:         "Test User",
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsVerified:   true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existingUser, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.tokenService.EXPECT().IssueSessionToken(userID).Return("session-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAccountService_ListUsers_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	users := []*entity.User{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", IsVerified: true},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
	}

	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	summaries, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, users[0].ID, summaries[0].ID)
	assert.Equal(t, users[1].Email, summaries[1].Email)
}

func TestAccountService_ListUsers_Empty(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{}, nil)

	summaries, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAccountService_GetUser_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:         userID,
		Name:       "Test User",
		Email:      "test@example.com",
		IsVerified: true,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)

	summary, err := fx.service.GetUser(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, userID, summary.ID)
	assert.Equal(t, existingUser.Email, summary.Email)
}

func TestAccountService_VerifyEmail_ExpiredToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseVerificationToken("stale-token").
		Return("", service.ErrTokenExpired)

	err := fx.service.VerifyEmail(ctx, "stale-token")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationLinkInvalid))
}
