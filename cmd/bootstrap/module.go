package bootstrap

import (
	"charmforge/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.PaymentsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
