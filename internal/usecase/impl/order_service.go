package impl

import (
	"context"
	"log/slog"
	"time"

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

// orderTimestampLayout mimics the storefront's locale timestamp.
const orderTimestampLayout = "1/2/2006, 3:04:05 PM"

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	mailService service.MailService
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	MailService service.MailService
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		mailService: params.MailService,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateVendorOrder appends an order to a vendor's received list.
func (srv *orderService) CreateVendorOrder(ctx context.Context, vendorID primitive.ObjectID, input usecase.CreateOrderInput) error {
	order, err := orderFromInput(input, true)
	if err != nil {
		return err
	}

	if err := srv.orderRepo.PushVendorOrder(ctx, vendorID, order); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create vendor order")
	}

	return nil
}

// CreatePatronOrder appends an order to a patron's own list.
func (srv *orderService) CreatePatronOrder(ctx context.Context, patronID primitive.ObjectID, input usecase.CreateOrderInput) error {
	order, err := orderFromInput(input, false)
	if err != nil {
		return err
	}

	if err := srv.orderRepo.PushPatronOrder(ctx, patronID, order); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create patron order")
	}

	return nil
}

// ListOrders returns a vendor's received orders.
func (srv *orderService) ListOrders(ctx context.Context, vendorID primitive.ObjectID) ([]entity.Order, error) {
	vendor, err := srv.loadUser(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return vendor.Orders, nil
}

// ListPatronOrders returns a patron's own orders.
func (srv *orderService) ListPatronOrders(ctx context.Context, patronID primitive.ObjectID) ([]entity.Order, error) {
	patron, err := srv.loadUser(ctx, patronID)
	if err != nil {
		return nil, err
	}

	return patron.PatronOrders, nil
}

// DeleteOrder removes the vendor-side orders with the given mainkey. The
// patron's copy is untouched: the two views are independently owned.
func (srv *orderService) DeleteOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error {
	if err := srv.orderRepo.PullVendorOrder(ctx, vendorID, mainkey); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return domainerrors.ErrOrderNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete vendor order")
	}

	return nil
}

// DeletePatronOrder removes the patron-side order matching both keys.
func (srv *orderService) DeletePatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error {
	if err := srv.orderRepo.PullPatronOrder(ctx, patronID, orderNumber, mainkey); err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return domainerrors.ErrOrderNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete patron order")
	}

	return nil
}

// SetOrderStatus records vendor readiness on the patron's view. Pending is
// not a target state; an order only moves forward.
func (srv *orderService) SetOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error {
	if !status.IsValid() || !status.IsTerminal() {
		return domainerrors.ErrValidationFailed.WithDetails("status must be 'Ready' or 'Ready in 10 Minutes'")
	}

	if err := srv.orderRepo.SetPatronOrderStatus(ctx, patronID, mainkey, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to set order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.Any("patronID", patronID), slog.String("mainkey", mainkey), slog.String("status", status.String()))

	return nil
}

// Checkout turns the patron's cart into orders inside one transaction: per
// vendor in the cart, one vendor order plus one mirrored patron order, all
// sharing one mainkey and order number. Stock is decremented through the
// conditional update, so a partition that would oversubscribe an item aborts
// the whole checkout and rolls everything back. The idempotency replay check
// runs inside the same transaction. Receipt emails go out after commit,
// best-effort.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	mainkey := input.IdempotencyKey
	if mainkey == "" {
		mainkey = uuid.New().String()
	}

	orderNumber := util.GenerateOrderNumber()
	timestamp := time.Now().Format(orderTimestampLayout)

	var patronOrders []entity.Order
	var receipts []service.PurchaseReceipt
	var replayed []entity.Order

	err := srv.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		userRepo := repos.UserRepo()
		storeRepo := repos.StoreRepo()
		orderRepo := repos.OrderRepo()
		cartRepo := repos.CartRepo()

		patronOrders = patronOrders[:0]
		receipts = receipts[:0]
		replayed = nil

		patron, err := userRepo.FindByID(txCtx, input.PatronID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load patron during checkout")
		}

		// Replay detection: a mainkey already present on the patron's view
		// means this checkout already ran. It reads through the transaction
		// so two concurrent checkouts sharing one key cannot both pass it.
		if existing := ordersByMainkey(patron.PatronOrders, mainkey); len(existing) > 0 {
			replayed = existing

			return nil
		}

		if len(patron.Cart) == 0 {
			return domainerrors.ErrEmptyCart
		}

		partitions, vendorOrder := entity.PartitionCartByVendor(patron.Cart)
		if len(vendorOrder) == 0 {
			return domainerrors.ErrEmptyCart.WithDetails("no cart entry references a valid store")
		}

		for _, vendorHex := range vendorOrder {
			vendorID, err := primitive.ObjectIDFromHex(vendorHex)
			if err != nil {
				return domainerrors.ErrStoreNotFound
			}

			items := partitions[vendorHex]
			total := entity.CartTotal(items)

			vendor, err := userRepo.FindByID(txCtx, vendorID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrStoreNotFound
				}

				return errors.Wrap(err, "failed to load vendor during checkout")
			}

			for _, item := range items {
				// Entries that never resolved to a catalog item carry
				// no food id; they cannot decrement stock.
				if item.FoodID == "" {
					continue
				}
				if err := storeRepo.DecrementItemQuantity(txCtx, vendorID, item.FoodID, item.Quantity); err != nil {
					switch {
					case errors.Is(err, repository.ErrInsufficientStock):
						return domainerrors.ErrInsufficientStock.WithDetails(item.ItemName)
					case errors.Is(err, repository.ErrItemNotFound):
						return domainerrors.ErrItemNotFound.WithDetails(item.ItemName)
					}

					return errors.Wrap(err, "failed to decrement stock during checkout")
				}
			}

			vendorOrderEntry := entity.Order{
				Mainkey:     mainkey,
				OrderNumber: orderNumber,
				Items:       items,
				Timestamp:   timestamp,
				CCName:      input.CCName,
				CartTotal:   total,
				Status:      entity.StatusPending,
				PatronID:    input.PatronID,
				Tip:         input.Tip,
			}
			if err := orderRepo.PushVendorOrder(txCtx, vendorID, vendorOrderEntry); err != nil {
				return errors.Wrap(err, "failed to push vendor order during checkout")
			}

			patronOrderEntry := vendorOrderEntry
			patronOrderEntry.PatronID = primitive.NilObjectID
			if err := orderRepo.PushPatronOrder(txCtx, input.PatronID, patronOrderEntry); err != nil {
				return errors.Wrap(err, "failed to push patron order during checkout")
			}

			patronOrders = append(patronOrders, patronOrderEntry)

			storeName := vendor.Name
			if vendor.Store != nil {
				storeName = vendor.Store.Name
			}
			receipts = append(receipts, service.PurchaseReceipt{
				Email:     patron.Email,
				StoreName: storeName,
				CCName:    input.CCName,
				CartTotal: total,
				Items:     items,
				Timestamp: timestamp,
			})
		}

		if err := cartRepo.Clear(txCtx, input.PatronID); err != nil {
			return errors.Wrap(err, "failed to clear cart during checkout")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.String("mainkey", mainkey), slog.Any("error", err))

		return nil, err
	}

	if len(replayed) > 0 {
		srv.log(ctx).Info("Checkout replayed", slog.String("mainkey", mainkey))

		return &usecase.CheckoutOutput{
			Mainkey:     mainkey,
			OrderNumber: replayed[0].OrderNumber,
			Orders:      replayed,
			Replayed:    true,
		}, nil
	}

	srv.log(ctx).Info("Checkout completed",
		slog.String("mainkey", mainkey), slog.Int("orderNumber", orderNumber), slog.Int("vendors", len(patronOrders)))

	srv.sendReceipts(ctx, receipts)

	return &usecase.CheckoutOutput{
		Mainkey:     mainkey,
		OrderNumber: orderNumber,
		Orders:      patronOrders,
	}, nil
}

// sendReceipts mails one receipt per vendor grouping. Failures are logged,
// never surfaced: the orders are already committed.
func (srv *orderService) sendReceipts(ctx context.Context, receipts []service.PurchaseReceipt) {
	for _, receipt := range receipts {
		if err := srv.mailService.SendPurchaseReceipt(ctx, receipt); err != nil {
			srv.log(ctx).Warn("Failed to send receipt email",
				slog.String("email", receipt.Email), slog.String("store", receipt.StoreName), slog.Any("error", err))
		}
	}
}

func (srv *orderService) loadUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func ordersByMainkey(orders []entity.Order, mainkey string) []entity.Order {
	var matched []entity.Order
	for _, order := range orders {
		if order.Mainkey == mainkey {
			matched = append(matched, order)
		}
	}

	return matched
}

func orderFromInput(input usecase.CreateOrderInput, vendorSide bool) (entity.Order, error) {
	status := entity.OrderStatus(input.Status)
	if input.Status == "" {
		status = entity.StatusPending
	}
	if !status.IsValid() {
		return entity.Order{}, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
	}

	items := make([]entity.CartItem, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, cartItemFromInput(it))
	}

	order := entity.Order{
		Mainkey:     input.Mainkey,
		OrderNumber: input.OrderNumber,
		Items:       items,
		Timestamp:   input.Timestamp,
		CCName:      input.CCName,
		CartTotal:   input.CartTotal,
		Status:      status,
		Tip:         input.Tip,
	}
	if vendorSide {
		order.PatronID = input.PatronID
	}

	return order, nil
}
