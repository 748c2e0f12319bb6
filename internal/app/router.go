package app

import (
	"github.com/go-chi/chi/v5"
	authhandler "github.com/ushnuel/next-dashboard/internal/handler/auth"
	invoicehandler "github.com/ushnuel/next-dashboard/internal/handler/invoice"
	"github.com/ushnuel/next-dashboard/internal/handler/middleware"
	"github.com/ushnuel/next-dashboard/internal/pagecache"
	"github.com/ushnuel/next-dashboard/internal/postgres"
	"github.com/ushnuel/next-dashboard/internal/service"
)

func (app App) Router() *chi.Mux {
	r := chi.NewRouter()

	p := postgres.New(app.DB)
	cache := pagecache.New()

	authService := service.NewAuthService(p, app.Config)
	authHandler := authhandler.New(authService)

	invoiceService := service.NewInvoiceService(p)
	invoiceHandler := invoicehandler.New(invoiceService, cache)

	r.Post("/login", authHandler.Login)

	r.Route("/dashboard/invoices", func(r chi.Router) {
		r.Use(middleware.WithAuth(app.Config))

		r.Get("/", invoiceHandler.List)
		r.Post("/", invoiceHandler.Create)
		r.Put("/{id}", invoiceHandler.Update)
		r.Delete("/{id}", invoiceHandler.Delete)
	})

	return r
}
