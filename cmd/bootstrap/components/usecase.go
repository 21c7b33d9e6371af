package components

import (
	"daycare-waitlist/internal/usecase"
	"daycare-waitlist/internal/usecase/commands"
	"daycare-waitlist/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountCommands,
		commands.NewWaitlistCommands,
		commands.NewPlacementCommands,
		commands.NewOfferCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewWaitlistQueries,
		queries.NewPlacementQueries,
		queries.NewOfferQueries,
		queries.NewMatchingQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
