package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"rentfolio-go/internal/config"
	"rentfolio-go/internal/transport/httpserver/handler"
	"rentfolio-go/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/properties", handlers.ListProperties)
		r.Post("/properties", handlers.CreateProperty)
		r.Get("/properties/{id}", handlers.GetProperty)
		r.Put("/properties/{id}", handlers.UpdateProperty)
		r.Delete("/properties/{id}", handlers.DeleteProperty)

		r.Get("/tenants", handlers.ListTenants)
		r.Post("/tenants", handlers.CreateTenant)
		r.Get("/tenants/{id}", handlers.GetTenant)
		r.Put("/tenants/{id}", handlers.UpdateTenant)
		r.Delete("/tenants/{id}", handlers.DeleteTenant)

		r.Get("/events", handlers.ListEvents)
		r.Post("/events", handlers.CreateEvent)
		r.Get("/events/{id}", handlers.GetEvent)
		r.Put("/events/{id}", handlers.UpdateEvent)
		r.Delete("/events/{id}", handlers.DeleteEvent)

		r.Get("/maintenance", handlers.ListMaintenance)
		r.Post("/maintenance", handlers.CreateMaintenance)
		r.Get("/maintenance/{id}", handlers.GetMaintenance)
		r.Put("/maintenance/{id}", handlers.UpdateMaintenance)
		r.Delete("/maintenance/{id}", handlers.DeleteMaintenance)

		r.Get("/market-data", handlers.ListMarketData)
		r.Post("/market-data", handlers.CreateMarketData)

		r.Get("/market/trends", handlers.MarketTrends)
		r.Get("/market/analytics", handlers.MarketAnalytics)
		r.Post("/market/scrape", handlers.TriggerScrape)
	})

	return r
}
