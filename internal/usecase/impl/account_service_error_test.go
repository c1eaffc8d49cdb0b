package impl

import (
	"context"
	"testing"

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
)

func TestAccountService_Signup_EmailAlreadyRegistered(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_Signup_DuplicateRace(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	// A concurrent signup wins between the availability check and the insert;
	// the store reports the unique constraint violation.
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "duplicate email"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_Signup_StoreTimeout(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, errors.Wrap(context.DeadlineExceeded, "query timed out"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
}

func TestAccountService_Signup_HashError(t *testing.T) {
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
	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Signup(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to hash password")
}

func TestAccountService_VerifyEmail_InvalidToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ParseVerificationToken("garbage").
		Return("", service.ErrTokenInvalid)

	err := fx.service.VerifyEmail(ctx, "garbage")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationLinkInvalid))
}

func TestAccountService_VerifyEmail_UserNotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	email := "gone@example.com"

	fx.tokenService.EXPECT().
		ParseVerificationToken("verify-token-123").
		Return(email, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrVerificationUserNotFound, "verification failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, email).Return(nil, repository.ErrUserNotFound)
	})

	err := fx.service.VerifyEmail(ctx, "verify-token-123")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationUserNotFound))
}

func TestAccountService_VerifyEmail_AlreadyVerified(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	email := "test@example.com"
	verifiedUser := &entity.User{
		ID:         uuid.New(),
		Email:      email,
		IsVerified: true,
	}

	fx.tokenService.EXPECT().
		ParseVerificationToken("verify-token-123").
		Return(email, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAlreadyVerified, "verification failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, email).Return(verifiedUser, nil)
	})

	err := fx.service.VerifyEmail(ctx, "verify-token-123")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	// The dummy comparison still runs so timing stays flat.
	fx.hasher.EXPECT().Check(input.Password, dummyPasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "wrong-password",
	}
	existingUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsVerified:   true,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(existingUser, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_EmailNotVerified(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	unverifiedUser := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
		IsVerified:   false,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(unverifiedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotVerified))
}

func TestAccountService_Login_StoreTimeout(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, errors.Wrap(context.DeadlineExceeded, "query timed out"))

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrServiceUnavailable))
}

func TestAccountService_GetUser_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	summary, err := fx.service.GetUser(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_ListUsers_FindError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindAll(ctx).
		Return(nil, errors.New("db error"))

	summaries, err := fx.service.ListUsers(ctx)

	assert.Error(t, err)
	assert.Nil(t, summaries)
	assert.Contains(t, err.Error(), "failed to list users")
}
