package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/sales-tracker/docs"
	"github.com/rogerio-castellano/sales-tracker/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(pub chi.Router) {
		pub.Use(RateLimitMiddleware)
		pub.Post("/login", handlers.LoginHandler)
		pub.Post("/register", handlers.RegisterHandler)
	})

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/clients", handlers.GetClientsHandler)
	r.Get("/sales", handlers.GetSalesHandler)
	r.Get("/sales/{id}", handlers.GetSaleByIDHandler)
	r.Get("/metrics", handlers.GetMetricsHandler)
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Group(func(priv chi.Router) {
		priv.Use(AuthMiddleware)
		priv.Post("/products", handlers.CreateProductHandler)
		priv.Put("/products/{id}", handlers.UpdateProductHandler)
		priv.Delete("/products/{id}", handlers.DeleteProductHandler)
		priv.Post("/clients", handlers.CreateClientHandler)
		priv.Put("/clients/{id}", handlers.UpdateClientHandler)
		priv.Delete("/clients/{id}", handlers.DeleteClientHandler)
		priv.Post("/clients/{id}/bonus", handlers.IncrementBonusHandler)
		priv.Post("/sales", handlers.CreateSaleHandler)
		priv.Post("/admin/users", handlers.RegisterAsAdminHandler)
	})

	return r
}
