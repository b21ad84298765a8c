package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mphinance/yieldmax/internal/api/handlers"
	custommiddleware "github.com/mphinance/yieldmax/internal/api/middleware"
	"github.com/mphinance/yieldmax/internal/config"
	"github.com/mphinance/yieldmax/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	dividendService *service.DividendService,
	holdingService *service.HoldingService,
	scheduleService *service.ScheduleService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/dividends", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(dividendService)
			r.Get("/", dividendHandler.All)
			r.Get("/upcoming", dividendHandler.Upcoming)
			r.Get("/monthly", dividendHandler.Monthly)
			r.Route("/date/{date}", func(r chi.Router) {
				r.Get("/", dividendHandler.OnDate)
				r.Get("/groups", dividendHandler.GroupedOnDate)
			})
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(holdingService)
			r.Get("/", holdingHandler.List)
		})

		r.Route("/accounts", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(holdingService)
			r.Get("/summary", accountHandler.Summary)
			r.Get("/tax", accountHandler.Tax)
		})

		r.Route("/schedule", func(r chi.Router) {
			scheduleHandler := handlers.NewScheduleHandler(scheduleService)
			r.Get("/next/{symbol}", scheduleHandler.NextPayment)
			r.Get("/groups", scheduleHandler.Groups)
		})
	})

	return r
}
