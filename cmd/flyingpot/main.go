package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"flyingpot/config"
	"flyingpot/internal/delivery"
	"flyingpot/internal/delivery/http"
	"flyingpot/internal/delivery/http/middleware"
	"flyingpot/internal/delivery/http/router/handler"
	"flyingpot/internal/domain/service"
	"flyingpot/internal/infra/auth"
	logs "flyingpot/internal/infra/log"
	"flyingpot/internal/infra/mail"
	"flyingpot/internal/infra/payment"
	mongopersistence "flyingpot/internal/infra/persistence/mongo"
	"flyingpot/internal/infra/qrcode"
	"flyingpot/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongopersistence.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongopersistence.NewUserRepository,
			mongopersistence.NewStoreRepository,
			mongopersistence.NewCartRepository,
			mongopersistence.NewOrderRepository,
			mongopersistence.NewComplimentRepository,
			mongopersistence.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			payment.NewStripeGateway,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with configured defaults.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewStoreService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewComplimentService,
			impl.NewPaymentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStoreHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewComplimentHandler,
			handler.NewPaymentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
