package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"storefront/internal/mw"
	"storefront/internal/service"
)

type Services struct {
	Store     *service.OrderStore
	Checkout  *service.CheckoutService
	Admin     *service.AdminService
	Auth      *service.AuthService
	JWTSecret string
}

func NewRouter(svc Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/api/plans", ListPlansHandler())
	r.Get("/api/countries", ListCountriesHandler())
	r.Get("/api/currency", SuggestCurrencyHandler())
	r.Post("/api/checkout", CheckoutHandler(svc.Checkout))
	r.Get("/api/orders/{orderId}", GetOrderHandler(svc.Store))
	r.Post("/api/admin/login", LoginHandler(svc.Auth, svc.JWTSecret))

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AdminOnly(svc.JWTSecret))

		r.Get("/api/admin/orders", ListAdminOrdersHandler(svc.Admin))
		r.Get("/api/admin/orders/export", ExportOrdersHandler(svc.Admin))
		r.Put("/api/admin/orders/{orderId}/status", UpdateStatusHandler(svc.Admin))
	})

	return r
}
