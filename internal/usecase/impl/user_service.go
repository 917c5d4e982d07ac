// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "flyingpot/internal/delivery/context"
	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/domain/service"
	"flyingpot/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckAvailability reports per-field conflicts before signup. Only a
// verified account claims its identifiers; a stale unverified signup can be
// taken over by registering again.
func (srv *userService) CheckAvailability(ctx context.Context, input usecase.CheckAvailabilityInput) error {
	byEmail, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}
	if byEmail != nil && byEmail.Verified {
		return domainerrors.ErrEmailTaken
	}

	byUsername, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}
	if byUsername != nil && byUsername.Verified {
		return domainerrors.ErrUsernameTaken
	}

	return nil
}

// Register creates the account, or completes a pending unverified one.
// Registering against an existing unverified account replaces its details;
// against a verified account it is rejected.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	kind := entity.Role(input.Kind)
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be 'user' or 'admin'")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Kind:         kind,
		Verified:     true,
	}

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up account during registration")
	}

	if existing != nil {
		if existing.Verified {
			srv.log(ctx).Warn("Registration rejected, account already verified", slog.String("email", input.Email))

			return nil, domainerrors.ErrAlreadyVerified
		}

		if err := srv.userRepo.UpdateAccount(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to complete pending registration")
		}
		account.ID = existing.ID

		srv.log(ctx).Debug("Completed pending registration", slog.Any("userID", account.ID))

		return &usecase.RegisterOutput{User: account}, nil
	}

	if err := srv.userRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", account.ID))

	return &usecase.RegisterOutput{User: account}, nil
}

// SignIn checks credentials and issues a session token.
func (srv *userService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	account, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for sign-in")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !account.Verified {
		srv.log(ctx).Warn("Sign-in rejected, account not verified", slog.String("email", input.Email))

		return nil, domainerrors.ErrNotVerified
	}

	token, err := srv.tokenService.GenerateToken(account.ID, account.Kind.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Signed in", slog.Any("userID", account.ID))

	return &usecase.SignInOutput{Token: token, User: account}, nil
}

// CurrentUser loads the account identified by a validated session.
func (srv *userService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	account, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return account, nil
}

// ListUsers returns every account. Admin surface only.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	accounts, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return accounts, nil
}

// DeleteUser removes an account entirely.
func (srv *userService) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("Deleted user", slog.Any("userID", userID))

	return nil
}
