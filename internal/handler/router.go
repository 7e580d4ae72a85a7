package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"furnished-lease-engine/internal/handler/api"
	"furnished-lease-engine/internal/handler/middleware"
	"furnished-lease-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, paymentHandler *api.PaymentHandler, leaseHandler *api.LeaseHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, paymentHandler, leaseHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Tracing.Enabled {
		engine.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, paymentHandler *api.PaymentHandler, leaseHandler *api.LeaseHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	webhooks := engine.Group("/webhooks")
	addRoutes(webhooks, []route{
		{Method: http.MethodPost, Path: "/payments", Handler: paymentHandler.Webhook},
	})

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "/:id/payment-confirmations", Handler: paymentHandler.ConfirmPayment},
			{Method: http.MethodGet, Path: "/:id/lease", Handler: leaseHandler.GetByReservation},
		})

		leases := apiGroup.Group("/leases")
		addRoutes(leases, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: leaseHandler.Get},
			{Method: http.MethodGet, Path: "/:id/invoices", Handler: leaseHandler.ListInvoices},
		})

		invoices := apiGroup.Group("/invoices")
		addRoutes(invoices, []route{
			{Method: http.MethodPost, Path: "/:id/mark-paid", Handler: leaseHandler.MarkPaid},
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
