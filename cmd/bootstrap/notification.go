package bootstrap

import (
	"context"
	"log/slog"

	"commerce-ledger/internal/infra/notification"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/shared"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		NewPublisher,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.LowStockNotifier)),
		),
	),
)

// NewPublisher falls back to logging events when Kafka is disabled.
func NewPublisher(cfg config.Config, tp trace.TracerProvider) (notification.Publisher, error) {
	if !cfg.Kafka.Enabled {
		slog.Info("kafka disabled, low stock events are logged only")
		return notification.NewLogPublisher(cfg.Kafka.LowStockTopic), nil
	}
	return notification.NewKafkaPublisher(cfg.Kafka, tp)
}

func NewNotifier(lc fx.Lifecycle, publisher notification.Publisher, uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) *notification.AsyncNotifier {
	n := notification.NewAsyncNotifier(publisher, uow, clk, cfg.Notify)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			n.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := n.Stop(ctx); err != nil {
				return err
			}
			slog.Info("low stock notifier stopped", "dropped", n.Dropped())
			return nil
		},
	})
	return n
}
