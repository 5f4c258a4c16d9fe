package components

import (
	"commerce-ledger/internal/handler"
	"commerce-ledger/internal/handler/api"
	"commerce-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Auth          *api.AuthHandler
	Inventory     *api.InventoryHandler
	Coupon        *api.CouponHandler
	Notification  *api.NotificationHandler
	AuthMW        *middleware.AuthMiddleware
	RequestLogger *middleware.Logger
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInventoryHandler,
		api.NewCouponHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Auth:          p.Auth,
				Inventory:     p.Inventory,
				Coupon:        p.Coupon,
				Notification:  p.Notification,
				AuthMW:        p.AuthMW,
				RequestLogger: p.RequestLogger,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
