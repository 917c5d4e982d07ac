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

type complimentServiceFixture struct {
	userRepo       *mocks.MockUserRepository
	complimentRepo *mocks.MockComplimentRepository
	qrService      *mocks.MockQRCodeService
	srv            usecase.ComplimentUsecase
}

func newComplimentFixture() *complimentServiceFixture {
	f := &complimentServiceFixture{
		userRepo:       new(mocks.MockUserRepository),
		complimentRepo: new(mocks.MockComplimentRepository),
		qrService:      new(mocks.MockQRCodeService),
	}

	txManager := &mocks.InlineTransactionManager{Factory: &mocks.StubRepositoryFactory{
		Users:       f.userRepo,
		Compliments: f.complimentRepo,
	}}

	f.srv = NewComplimentService(ComplimentServiceParams{
		TxManager:      txManager,
		UserRepo:       f.userRepo,
		ComplimentRepo: f.complimentRepo,
		QRService:      f.qrService,
		Logger:         slog.Default(),
	})

	return f
}

func complimentVendor(vendorID primitive.ObjectID, groups ...entity.ComplimentGroup) *entity.User {
	return &entity.User{
		ID:               vendorID,
		Name:             "Vendor",
		Store:            &entity.Store{Name: "The Flying Pot", StoreID: vendorID.Hex() + "-12345"},
		ComplimentGroups: groups,
	}
}

func TestComplimentService_CreateGroup(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	f.complimentRepo.On("PushGroup", mock.Anything, vendorID, mock.MatchedBy(func(g entity.ComplimentGroup) bool {
		return g.GroupID != "" && len(g.Codes) == 3
	})).Return(nil)

	group, err := f.srv.CreateGroup(context.Background(), vendorID, usecase.CreateComplimentGroupInput{
		Title: "Free Soup", Amount: 5, Count: 3,
	})
	require.NoError(t, err)
	require.Len(t, group.Codes, 3)

	seen := map[string]bool{}
	for _, code := range group.Codes {
		assert.False(t, code.Sent)
		assert.Len(t, code.Code, 6)
		assert.NotEmpty(t, code.ID)
		seen[code.ID] = true
	}
	assert.Len(t, seen, 3)
	f.complimentRepo.AssertExpectations(t)
}

func TestComplimentService_CreateGroup_RejectsNonPositiveCount(t *testing.T) {
	f := newComplimentFixture()

	_, err := f.srv.CreateGroup(context.Background(), primitive.NewObjectID(), usecase.CreateComplimentGroupInput{
		Title: "Free Soup", Count: 0,
	})
	require.Error(t, err)
	f.complimentRepo.AssertNotCalled(t, "PushGroup", mock.Anything, mock.Anything, mock.Anything)
}

func TestComplimentService_SendCompliments(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	group := entity.ComplimentGroup{
		GroupID: "grp-1",
		Title:   "Free Soup",
		Amount:  5,
		Codes: []entity.ComplimentCode{
			{ID: "c1", Code: "AAAAAA", Sent: true},
			{ID: "c2", Code: "BBBBBB"},
			{ID: "c3", Code: "CCCCCC"},
		},
	}
	vendor := complimentVendor(vendorID, group)

	follower1 := &entity.User{ID: primitive.NewObjectID(), Email: "one@example.com"}
	follower2 := &entity.User{ID: primitive.NewObjectID(), Email: "two@example.com"}

	f.userRepo.On("FindByID", mock.Anything, vendorID).Return(vendor, nil)
	f.userRepo.On("FindByEmail", mock.Anything, "one@example.com").Return(follower1, nil)
	f.userRepo.On("FindByEmail", mock.Anything, "two@example.com").Return(follower2, nil)

	// The first follower gets the first unsent code, the second the next one.
	// Each copy carries the store id and both delivery flags already set.
	f.complimentRepo.On("PushReceived", mock.Anything, follower1.ID, mock.MatchedBy(func(c entity.Compliment) bool {
		return c.ID == "c2" && c.Code == "BBBBBB" && c.Sent && c.KitchenSent &&
			c.Recipient == "one@example.com" && c.StoreID == vendor.Store.StoreID && c.Title == "Free Soup"
	})).Return(nil)
	f.complimentRepo.On("PushReceived", mock.Anything, follower2.ID, mock.MatchedBy(func(c entity.Compliment) bool {
		return c.ID == "c3" && c.Recipient == "two@example.com"
	})).Return(nil)
	f.complimentRepo.On("MarkCodeSent", mock.Anything, vendorID, "grp-1", "c2").Return(nil)
	f.complimentRepo.On("MarkCodeSent", mock.Anything, vendorID, "grp-1", "c3").Return(nil)

	err := f.srv.SendCompliments(context.Background(), vendorID, "grp-1", []string{"one@example.com", "two@example.com"})
	require.NoError(t, err)
	f.complimentRepo.AssertExpectations(t)
}

func TestComplimentService_SendCompliments_Exhausted(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	group := entity.ComplimentGroup{
		GroupID: "grp-1",
		Codes:   []entity.ComplimentCode{{ID: "c1", Code: "AAAAAA"}},
	}
	vendor := complimentVendor(vendorID, group)

	follower := &entity.User{ID: primitive.NewObjectID(), Email: "one@example.com"}

	f.userRepo.On("FindByID", mock.Anything, vendorID).Return(vendor, nil)
	f.userRepo.On("FindByEmail", mock.Anything, "one@example.com").Return(follower, nil)
	f.complimentRepo.On("PushReceived", mock.Anything, follower.ID, mock.Anything).Return(nil)
	f.complimentRepo.On("MarkCodeSent", mock.Anything, vendorID, "grp-1", "c1").Return(nil)

	// Two followers, one code. The whole distribution fails.
	err := f.srv.SendCompliments(context.Background(), vendorID, "grp-1", []string{"one@example.com", "two@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrNoUnsentCode)
}

func TestComplimentService_SendCompliments_GroupNotFound(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	f.userRepo.On("FindByID", mock.Anything, vendorID).Return(complimentVendor(vendorID), nil)

	err := f.srv.SendCompliments(context.Background(), vendorID, "ghost", []string{"one@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestComplimentService_SendCompliments_UnknownFollower(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	group := entity.ComplimentGroup{
		GroupID: "grp-1",
		Codes:   []entity.ComplimentCode{{ID: "c1", Code: "AAAAAA"}},
	}
	f.userRepo.On("FindByID", mock.Anything, vendorID).Return(complimentVendor(vendorID, group), nil)
	f.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := f.srv.SendCompliments(context.Background(), vendorID, "grp-1", []string{"ghost@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	f.complimentRepo.AssertNotCalled(t, "MarkCodeSent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComplimentService_DeleteGroup_NotFound(t *testing.T) {
	f := newComplimentFixture()

	vendorID := primitive.NewObjectID()
	f.complimentRepo.On("PullGroup", mock.Anything, vendorID, "ghost").Return(repository.ErrGroupNotFound)

	err := f.srv.DeleteGroup(context.Background(), vendorID, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestComplimentService_ListKitchenCompliments_FiltersFlag(t *testing.T) {
	f := newComplimentFixture()

	userID := primitive.NewObjectID()
	f.userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID: userID,
		Compliments: []entity.Compliment{
			{ID: "c1", Code: "AAAAAA", KitchenSent: true},
			{ID: "c2", Code: "BBBBBB", KitchenSent: false},
			{ID: "c3", Code: "CCCCCC", KitchenSent: true},
		},
	}, nil)

	kitchen, err := f.srv.ListKitchenCompliments(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, kitchen, 2)
	assert.Equal(t, "c1", kitchen[0].ID)
	assert.Equal(t, "c3", kitchen[1].ID)
}

func TestComplimentService_ComplimentQR(t *testing.T) {
	f := newComplimentFixture()

	userID := primitive.NewObjectID()
	f.userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID:          userID,
		Compliments: []entity.Compliment{{ID: "c1", Code: "AAAAAA"}},
	}, nil)
	f.qrService.On("GenerateComplimentQR", "AAAAAA").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.srv.ComplimentQR(context.Background(), userID, "c1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	f.qrService.AssertExpectations(t)
}

func TestComplimentService_ComplimentQR_NotFound(t *testing.T) {
	f := newComplimentFixture()

	userID := primitive.NewObjectID()
	f.userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

	_, err := f.srv.ComplimentQR(context.Background(), userID, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrComplimentNotFound)
	f.qrService.AssertNotCalled(t, "GenerateComplimentQR", mock.Anything)
}
