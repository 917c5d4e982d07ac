package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/mocks"
	"flyingpot/internal/usecase"
)

func newUserService(userRepo *mocks.MockUserRepository, hasher *mocks.MockPasswordHasher, tokens *mocks.MockTokenService) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       slog.Default(),
	})
}

func TestUserService_Register_NewAccount(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokens := new(mocks.MockTokenService)

	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "pat@example.com" && u.PasswordHash == "hashed" && u.Verified && u.Kind == entity.RoleUser
	})).Return(nil)

	srv := newUserService(userRepo, hasher, tokens)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name:     "Pat",
		Username: "pat",
		Password: "secret123",
		Email:    "pat@example.com",
		Kind:     "user",
	})
	require.NoError(t, err)
	assert.True(t, out.User.Verified)
	userRepo.AssertExpectations(t)
}

func TestUserService_Register_CompletesPendingSignup(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokens := new(mocks.MockTokenService)

	pendingID := primitive.NewObjectID()
	pending := &entity.User{ID: pendingID, Email: "pat@example.com", Verified: false}

	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").Return(pending, nil)
	userRepo.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "pat@example.com" && u.Verified
	})).Return(nil)

	srv := newUserService(userRepo, hasher, tokens)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name: "Pat", Username: "pat", Password: "secret123", Email: "pat@example.com", Kind: "user",
	})
	require.NoError(t, err)
	assert.Equal(t, pendingID, out.User.ID)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_RejectsVerifiedAccount(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokens := new(mocks.MockTokenService)

	hasher.On("Hash", "secret123").Return("hashed", nil)
	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").
		Return(&entity.User{Email: "pat@example.com", Verified: true}, nil)

	srv := newUserService(userRepo, hasher, tokens)

	_, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name: "Pat", Username: "pat", Password: "secret123", Email: "pat@example.com", Kind: "user",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
}

func TestUserService_Register_RejectsUnknownKind(t *testing.T) {
	srv := newUserService(new(mocks.MockUserRepository), new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	_, err := srv.Register(context.Background(), usecase.RegisterInput{
		Name: "Pat", Username: "pat", Password: "secret123", Email: "pat@example.com", Kind: "superuser",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_SignIn(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokens := new(mocks.MockTokenService)

	accountID := primitive.NewObjectID()
	account := &entity.User{
		ID: accountID, Email: "pat@example.com", PasswordHash: "hashed",
		Kind: entity.RoleUser, Verified: true,
	}

	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").Return(account, nil)
	hasher.On("Check", "secret123", "hashed").Return(true)
	tokens.On("GenerateToken", accountID, "user").Return("jwt-token", nil)

	srv := newUserService(userRepo, hasher, tokens)

	out, err := srv.SignIn(context.Background(), usecase.SignInInput{Email: "pat@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", out.Token)
	assert.Equal(t, accountID, out.User.ID)
}

func TestUserService_SignIn_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)

	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").
		Return(&entity.User{Email: "pat@example.com", PasswordHash: "hashed", Verified: true}, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	srv := newUserService(userRepo, hasher, new(mocks.MockTokenService))

	_, err := srv.SignIn(context.Background(), usecase.SignInInput{Email: "pat@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignIn_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	srv := newUserService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	_, err := srv.SignIn(context.Background(), usecase.SignInInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignIn_Unverified(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	hasher := new(mocks.MockPasswordHasher)

	userRepo.On("FindByEmail", mock.Anything, "pat@example.com").
		Return(&entity.User{Email: "pat@example.com", PasswordHash: "hashed", Verified: false}, nil)
	hasher.On("Check", "secret123", "hashed").Return(true)

	srv := newUserService(userRepo, hasher, new(mocks.MockTokenService))

	_, err := srv.SignIn(context.Background(), usecase.SignInInput{Email: "pat@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domainerrors.ErrNotVerified)
}

func TestUserService_CheckAvailability(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&entity.User{Email: "taken@example.com", Verified: true}, nil)

	srv := newUserService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	err := srv.CheckAvailability(context.Background(), usecase.CheckAvailabilityInput{
		Email: "taken@example.com", Username: "newbie",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_CheckAvailability_UsernameTaken(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	userRepo.On("FindByEmail", mock.Anything, "fresh@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByUsername", mock.Anything, "taken").
		Return(&entity.User{Username: "taken", Verified: true}, nil)

	srv := newUserService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	err := srv.CheckAvailability(context.Background(), usecase.CheckAvailabilityInput{
		Email: "fresh@example.com", Username: "taken",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_CheckAvailability_UnverifiedDoesNotClaim(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	userRepo.On("FindByEmail", mock.Anything, "pending@example.com").
		Return(&entity.User{Email: "pending@example.com", Verified: false}, nil)
	userRepo.On("FindByUsername", mock.Anything, "pending").Return(nil, repository.ErrUserNotFound)

	srv := newUserService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	err := srv.CheckAvailability(context.Background(), usecase.CheckAvailabilityInput{
		Email: "pending@example.com", Username: "pending",
	})
	assert.NoError(t, err)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	userRepo.On("Delete", mock.Anything, mock.Anything).Return(repository.ErrUserNotFound)

	srv := newUserService(userRepo, new(mocks.MockPasswordHasher), new(mocks.MockTokenService))

	err := srv.DeleteUser(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
