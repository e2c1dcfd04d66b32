package main

import (
	"context"
	"log/slog"
	"os"

	"bitefeed/config"
	"bitefeed/internal/delivery"
	"bitefeed/internal/delivery/http"
	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/router/handler"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/infra/auth"
	"bitefeed/internal/infra/blob"
	logs "bitefeed/internal/infra/log"
	"bitefeed/internal/infra/persistence/postgres"
	"bitefeed/internal/infra/pubsub"
	"bitefeed/internal/infra/qrcode"
	"bitefeed/internal/usecase/impl"

	"go.uber.org/fx"

	// Blob bucket drivers selected by the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPartnerRepository,
			postgres.NewItemRepository,
			postgres.NewMembershipRepository,
			postgres.NewSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			blob.NewBlobStore,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the payment QR service with dependency injection
func newQRCodeService(cfg *config.Config) service.PaymentQRService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewIdentityService,
			impl.NewInteractionService,
			impl.NewCommentService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewInteractionHandler,
			handler.NewSubscriptionHandler,
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
