package bootstrap

import (
	"commerce-ledger/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	TracingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	NotificationModule,
	components.HandlerModule,
	SeedModule,
)
