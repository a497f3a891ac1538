package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/api/handler"
	"github.com/lifeassist/goals/internal/api/middleware"
	"github.com/lifeassist/goals/internal/api/service"
	"github.com/lifeassist/goals/internal/api/store"
	"github.com/lifeassist/goals/internal/infrastructure/http/handlers"
)

// Option tweaks router construction.
type Option func(*routerOptions)

type routerOptions struct {
	hashCost int
}

// WithHashCost sets the bcrypt cost used for new passwords.
func WithHashCost(cost int) Option {
	return func(o *routerOptions) { o.hashCost = cost }
}

// NewRouter builds the Echo instance serving the goals API under /api.
func NewRouter(st store.Store, log zerolog.Logger, opts ...Option) *echo.Echo {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Per-route request metrics live on their own registry so several routers
	// can coexist in one process; /metrics serves it next to the default one.
	httpMetrics := prometheus.NewRegistry()

	// RequestLogger wraps Recover so recovered panics still get a request line.
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "lifeassist",
		Subsystem:  "http",
		Registerer: httpMetrics,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/health") || c.Path() == "/metrics"
		},
	}))
	e.Use(echomiddleware.Recover())

	accounts := service.NewAccountService(st, log)
	if o.hashCost > 0 {
		accounts.WithHashCost(o.hashCost)
	}
	accountHandler := handler.NewAccountHandler(accounts)
	goalHandler := handler.NewGoalHandler(accounts)

	g := e.Group("/api")
	g.POST("/register", accountHandler.Register)
	g.POST("/login", accountHandler.Login)
	g.GET("/users/:userId", accountHandler.Get)
	g.PATCH("/users/:userId", accountHandler.UpdateProfile)
	g.PATCH("/users/:userId/description", accountHandler.UpdateDescription)
	g.POST("/users/:userId/goals", goalHandler.Submit)
	g.PUT("/users/:userId/goals/:goalId/status", goalHandler.UpdateStatus)

	healthHandler := handlers.NewHealthHandler()
	readyHandler := handlers.NewHealthDependenciesHandler(map[string]handlers.Pinger{"store": st})

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})))

	return e
}
