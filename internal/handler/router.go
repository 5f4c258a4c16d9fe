package handler

import (
	"net/http"

	"commerce-ledger/internal/domain/user"
	"commerce-ledger/internal/handler/api"
	"commerce-ledger/internal/handler/middleware"
	"commerce-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Inventory     *api.InventoryHandler
	Coupon        *api.CouponHandler
	Notification  *api.NotificationHandler
	AuthMW        *middleware.AuthMiddleware
	RequestLogger *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.RequestLogger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := h.AuthMW.RequireRoleAtLeast(user.RoleOperator)
	admin := h.AuthMW.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(h.AuthMW.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(h.AuthMW.RequireAuth())
		{
			addRoutes(inventory, []route{
				{Method: http.MethodPost, Path: "/transactions", Handler: h.Inventory.RecordTransaction, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/transactions/product/:id", Handler: h.Inventory.ListTransactions},
				{Method: http.MethodGet, Path: "/products/:id/stock", Handler: h.Inventory.GetStock},
				{Method: http.MethodGet, Path: "/low-stock", Handler: h.Inventory.ListLowStock},
				{Method: http.MethodGet, Path: "/analytics/product/:id", Handler: h.Inventory.ProductAnalytics},
				{Method: http.MethodGet, Path: "/alerts", Handler: h.Inventory.ListAlerts},
				{Method: http.MethodPost, Path: "/alerts", Handler: h.Inventory.CreateAlert, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/alerts/:id", Handler: h.Inventory.UpdateAlert, Mw: []gin.HandlerFunc{admin}},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coupon.ListActive},
				{Method: http.MethodGet, Path: "/validate", Handler: h.Coupon.Validate},
				{Method: http.MethodPost, Path: "/calculate", Handler: h.Coupon.Calculate},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
			})

			protected := coupons.Group("")
			protected.Use(h.AuthMW.RequireAuth())
			addRoutes(protected, []route{
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Coupon.Redeem, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create, Mw: []gin.HandlerFunc{admin}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Coupon.Update, Mw: []gin.HandlerFunc{admin}},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(h.AuthMW.RequireAuth(), admin)
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "/jobs", Handler: h.Notification.ListJobs},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
