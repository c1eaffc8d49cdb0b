// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// mailDispatchTimeout bounds the background delivery of a verification mail.
const mailDispatchTimeout = 30 * time.Second

// dummyPasswordHash keeps bcrypt comparison time flat when the email is
// unknown, so login timing does not reveal which credential was wrong.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailSender    service.MailSender
	verifyBaseURL string
	logger        *slog.Logger
}

// AccountConfig carries the few plain values the account service needs,
// extracted from the application config by the composition root.
type AccountConfig struct {
	VerifyBaseURL string
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailSender   service.MailSender
	Config       *AccountConfig
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	verifyBaseURL := ""
	if params.Config != nil {
		verifyBaseURL = params.Config.VerifyBaseURL
	}

	return &accountService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailSender:    params.MailSender,
		verifyBaseURL: verifyBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new unverified account and dispatches a verification mail.
//
// The duplicate pre-check gives a friendly error on the common path, but the
// unique index on users.email is the actual correctness guard: two concurrent
// signups can both pass the pre-check and only one Create will win.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Signup rejected, email taken", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "signup failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.storeFailure(err, "failed to check email availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		IsVerified:   false,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent signup may have won the race since the pre-check;
		// the store surfaces that as ErrEmailAlreadyRegistered.
		if errors.Is(err, domainerrors.ErrEmailAlreadyRegistered) {
			srv.log(ctx).Warn("Signup lost duplicate race", slog.String("email", input.Email))

			return nil, err
		}

		return nil, srv.storeFailure(err, "failed to create user")
	}

	// Persistence happens before notification: the account exists in the
	// unverified state even if mail delivery fails.
	srv.dispatchVerificationMail(ctx, newUser)

	srv.log(ctx).Info("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: usecase.NewUserSummary(newUser)}, nil
}

// dispatchVerificationMail issues a verification token and sends the link on
// a background goroutine. Delivery failure is logged, never surfaced to the
// signup caller.
func (srv *accountService) dispatchVerificationMail(ctx context.Context, user *entity.User) {
	logger := srv.log(ctx)

	token, err := srv.tokenService.IssueVerificationToken(user.Email)
	if err != nil {
		logger.Error("Failed to issue verification token",
			slog.String("email", user.Email), slog.Any("error", err))

		return
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", srv.verifyBaseURL, token)
	subject := "Verify your email address"
	body := fmt.Sprintf("Hi %s,\n\nPlease confirm your email address by opening the link below within one hour:\n\n%s\n", user.Name, link)

	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailDispatchTimeout)
	go func() {
		defer cancel()

		if err := srv.mailSender.Send(mailCtx, user.Email, subject, body); err != nil {
			logger.Error("Failed to send verification mail",
				slog.String("email", user.Email), slog.Any("error", err))

			return
		}

		logger.Info("Verification mail sent", slog.String("email", user.Email))
	}()
}

// VerifyEmail consumes a verification token and flips the matching account to
// verified. The read-modify-write runs in a single transaction so concurrent
// verifications with the same token cannot both pass the already-verified check.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) error {
	email, err := srv.tokenService.ParseVerificationToken(token)
	if err != nil {
		srv.log(ctx).Warn("Verification failed", slog.Any("error", err))

		// Invalid and expired links collapse into one user-facing error.
		return errors.Wrap(domainerrors.ErrVerificationLinkInvalid, err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrVerificationUserNotFound, "verification failed")
			}

			return srv.storeFailure(findErr, "failed to find user for verification")
		}

		if user.IsVerified {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "verification failed")
		}

		user.IsVerified = true

		if saveErr := userRepo.Save(ctx, user); saveErr != nil {
			return srv.storeFailure(saveErr, "failed to persist verification")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Verification failed", slog.String("email", email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return nil
}

// Login authenticates a verified account and issues a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.storeFailure(err, "failed to find user for login")
	}

	// Always run the bcrypt comparison, against a dummy hash when the email
	// is unknown, to keep response timing flat.
	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.PasswordHash
	}
	passwordOK := srv.hasher.Check(input.Password, passwordHash)

	if err != nil || !passwordOK {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email),
			slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsVerified {
		srv.log(ctx).Warn("Login rejected, email not verified", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login failed")
	}

	token, err := srv.tokenService.IssueSessionToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  usecase.NewUserSummary(user),
	}, nil
}

// ListUsers returns every account, unfiltered and unpaginated.
func (srv *accountService) ListUsers(ctx context.Context) ([]*usecase.UserSummary, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, srv.storeFailure(err, "failed to list users")
	}

	summaries := make([]*usecase.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, usecase.NewUserSummary(user))
	}

	return summaries, nil
}

// GetUser returns the account with the given ID.
func (srv *accountService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "lookup failed")
		}

		return nil, srv.storeFailure(err, "failed to find user by id")
	}

	return usecase.NewUserSummary(user), nil
}

// storeFailure classifies unexpected store errors: timeouts become the
// user-facing ServiceUnavailable error, everything else stays an internal
// failure handled as a 500 by the endpoint layer.
func (srv *accountService) storeFailure(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(domainerrors.ErrServiceUnavailable, message)
	}

	return errors.Wrap(err, message)
}
