package bootstrap

import (
	"daycare-waitlist/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	InstrumentationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
