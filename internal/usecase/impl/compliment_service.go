package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "flyingpot/internal/delivery/context"
	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/domain/service"
	"flyingpot/internal/usecase"
	"flyingpot/internal/util"
)

// complimentService implements the ComplimentUsecase interface.
type complimentService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	complimentRepo repository.ComplimentRepository
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// ComplimentServiceParams holds dependencies for complimentService, injected by Fx.
type ComplimentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ComplimentRepo repository.ComplimentRepository
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewComplimentService is the constructor for complimentService.
func NewComplimentService(params ComplimentServiceParams) usecase.ComplimentUsecase {
	return &complimentService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		complimentRepo: params.ComplimentRepo,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (srv *complimentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGroup issues a batch of codes under one group id.
func (srv *complimentService) CreateGroup(ctx context.Context, vendorID primitive.ObjectID, input usecase.CreateComplimentGroupInput) (*entity.ComplimentGroup, error) {
	if input.Count <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("count must be a positive integer")
	}

	codes := make([]entity.ComplimentCode, 0, input.Count)
	for range input.Count {
		codes = append(codes, entity.ComplimentCode{
			ID:   uuid.New().String(),
			Code: util.GenerateRandomKey(),
		})
	}

	group := entity.ComplimentGroup{
		GroupID:   uuid.New().String(),
		Title:     input.Title,
		Amount:    input.Amount,
		StartDate: input.StartDate,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Codes:     codes,
	}

	if err := srv.complimentRepo.PushGroup(ctx, vendorID, group); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create compliment group")
	}

	srv.log(ctx).Info("Created compliment group",
		slog.Any("vendorID", vendorID), slog.String("groupID", group.GroupID), slog.Int("codes", len(codes)))

	return &group, nil
}

// SendCompliments hands one unsent code from the group to each follower.
// The vendor's copy is marked sent and the follower receives a flat copy
// carrying the store id and delivery flags. Distribution for all followers
// happens in one transaction: either every follower gets a code or none do.
func (srv *complimentService) SendCompliments(ctx context.Context, vendorID primitive.ObjectID, groupID string, followers []string) error {
	if len(followers) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("followers must not be empty")
	}

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		complimentRepo := repos.ComplimentRepo()

		vendor, err := userRepo.FindByID(txCtx, vendorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load vendor")
		}
		if vendor.Store == nil {
			return domainerrors.ErrStoreNotFound
		}

		group := findGroup(vendor.ComplimentGroups, groupID)
		if group == nil {
			return domainerrors.ErrGroupNotFound
		}

		next := group.FirstUnsent()
		for _, followerEmail := range followers {
			if next >= len(group.Codes) || next < 0 {
				return domainerrors.ErrNoUnsentCode
			}
			code := group.Codes[next]

			follower, err := userRepo.FindByEmail(txCtx, followerEmail)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrUserNotFound.WithDetails(followerEmail)
				}

				return errors.Wrap(err, "failed to load follower")
			}

			copyOut := entity.Compliment{
				ID:          code.ID,
				Code:        code.Code,
				Title:       group.Title,
				Amount:      group.Amount,
				StoreID:     vendor.Store.StoreID,
				Recipient:   followerEmail,
				Sent:        true,
				KitchenSent: true,
			}
			if err := complimentRepo.PushReceived(txCtx, follower.ID, copyOut); err != nil {
				return errors.Wrap(err, "failed to deliver compliment")
			}

			if err := complimentRepo.MarkCodeSent(txCtx, vendorID, groupID, code.ID); err != nil {
				return errors.Wrap(err, "failed to mark code sent")
			}
			group.Codes[next].Sent = true
			next = group.FirstUnsent()
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sending compliments failed",
			slog.Any("vendorID", vendorID), slog.String("groupID", groupID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Sent compliments",
		slog.Any("vendorID", vendorID), slog.String("groupID", groupID), slog.Int("recipients", len(followers)))

	return nil
}

// DeleteGroup removes a group and its remaining codes.
func (srv *complimentService) DeleteGroup(ctx context.Context, vendorID primitive.ObjectID, groupID string) error {
	if err := srv.complimentRepo.PullGroup(ctx, vendorID, groupID); err != nil {
		switch {
		case errors.Is(err, repository.ErrGroupNotFound):
			return domainerrors.ErrGroupNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete compliment group")
	}

	return nil
}

// ListCompliments returns the user's issued groups and received codes.
func (srv *complimentService) ListCompliments(ctx context.Context, userID primitive.ObjectID) (*usecase.ComplimentsOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load compliments")
	}

	return &usecase.ComplimentsOutput{
		Groups:   user.ComplimentGroups,
		Received: user.Compliments,
	}, nil
}

// ListKitchenCompliments returns received codes flagged for the kitchen view.
func (srv *complimentService) ListKitchenCompliments(ctx context.Context, userID primitive.ObjectID) ([]entity.Compliment, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load kitchen compliments")
	}

	var kitchen []entity.Compliment
	for _, c := range user.Compliments {
		if c.KitchenSent {
			kitchen = append(kitchen, c)
		}
	}

	return kitchen, nil
}

// ComplimentQR renders one received code as a PNG.
func (srv *complimentService) ComplimentQR(ctx context.Context, userID primitive.ObjectID, codeID string) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load compliment owner")
	}

	for _, c := range user.Compliments {
		if c.ID == codeID {
			png, err := srv.qrService.GenerateComplimentQR(c.Code)
			if err != nil {
				return nil, errors.Wrap(err, "failed to render compliment QR")
			}

			return png, nil
		}
	}

	return nil, domainerrors.ErrComplimentNotFound
}

func findGroup(groups []entity.ComplimentGroup, groupID string) *entity.ComplimentGroup {
	for i := range groups {
		if groups[i].GroupID == groupID {
			return &groups[i]
		}
	}

	return nil
}
