package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"daycare-waitlist/internal/handler/api"
	"daycare-waitlist/internal/handler/middleware"
	"daycare-waitlist/internal/pkg/config"
	"daycare-waitlist/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Account   *api.AccountHandler
	Waitlist  *api.WaitlistHandler
	Placement *api.PlacementHandler
	Offer     *api.OfferHandler
	Admin     *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, m, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if m != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/clients", Handler: h.Account.RegisterClient},
			{Method: http.MethodPost, Path: "/providers", Handler: h.Account.RegisterProvider},
			{Method: http.MethodPost, Path: "/login", Handler: h.Account.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Account.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Account.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})

		addRoutes(apiGroup.Group("/clients"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Account.GetClient},
		})

		addRoutes(apiGroup.Group("/providers"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Account.GetProvider},
			{Method: http.MethodGet, Path: "/:id/candidates", Handler: h.Offer.Candidates},
		})

		addRoutes(apiGroup.Group("/waitlist"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Waitlist.Enroll},
			{Method: http.MethodGet, Path: "", Handler: h.Waitlist.List},
			{Method: http.MethodGet, Path: "/:id/position", Handler: h.Waitlist.Position},
		})

		addRoutes(apiGroup.Group("/placements"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Placement.Declare},
			{Method: http.MethodGet, Path: "", Handler: h.Placement.List},
		})

		addRoutes(apiGroup.Group("/offers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Offer.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Offer.List},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Offer.Respond},
		})

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
		})
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
