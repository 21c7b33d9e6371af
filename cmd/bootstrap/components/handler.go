package components

import (
	"daycare-waitlist/internal/handler"
	"daycare-waitlist/internal/handler/api"
	"daycare-waitlist/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAccountHandler,
		api.NewWaitlistHandler,
		api.NewPlacementHandler,
		api.NewOfferHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Account   *api.AccountHandler
	Waitlist  *api.WaitlistHandler
	Placement *api.PlacementHandler
	Offer     *api.OfferHandler
	Admin     *api.AdminHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Account:   p.Account,
		Waitlist:  p.Waitlist,
		Placement: p.Placement,
		Offer:     p.Offer,
		Admin:     p.Admin,
	}
}
