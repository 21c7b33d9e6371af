package bootstrap

import (
	"daycare-waitlist/internal/pkg/clock"
	"daycare-waitlist/internal/pkg/metrics"

	"go.uber.org/fx"
)

var InstrumentationModule = fx.Module("instrumentation",
	fx.Provide(
		metrics.New,
		clock.NewRealClock,
	),
)
