package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/propfolio/backend/internal/api/handlers"
	custommiddleware "github.com/propfolio/backend/internal/api/middleware"
	"github.com/propfolio/backend/internal/config"
	"github.com/propfolio/backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	propertyService *service.PropertyService,
	valuationService *service.ValuationService,
	loanService *service.LoanService,
	transactionService *service.TransactionService,
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
		// System namespace: health and version are public, token storage
		// is API-key protected.
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.With(custommiddleware.APIKeyMiddleware).Put("/avm-token", systemHandler.SetAVMToken)
		})

		// Everything below is owner-scoped.
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireOwner)

			r.Route("/portfolio", func(r chi.Router) {
				portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
				r.Get("/summary", portfolioHandler.Summary)
				r.Get("/metrics", portfolioHandler.Metrics)
			})

			r.Route("/properties", func(r chi.Router) {
				propertyHandler := handlers.NewPropertyHandler(propertyService)
				valuationHandler := handlers.NewValuationHandler(valuationService)
				loanHandler := handlers.NewLoanHandler(loanService)

				r.Get("/", propertyHandler.Properties)
				r.Post("/", propertyHandler.CreateProperty)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", propertyHandler.Property)
					r.Put("/", propertyHandler.UpdateProperty)
					r.Delete("/", propertyHandler.DeleteProperty)

					r.Get("/valuations", valuationHandler.Valuations)
					r.Post("/valuations", valuationHandler.CreateValuation)

					r.Get("/loans", loanHandler.Loans)
					r.Post("/loans", loanHandler.CreateLoan)
				})
			})

			r.Route("/valuations/{uuid}", func(r chi.Router) {
				valuationHandler := handlers.NewValuationHandler(valuationService)
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", valuationHandler.DeleteValuation)
			})

			r.Route("/loans/{uuid}", func(r chi.Router) {
				loanHandler := handlers.NewLoanHandler(loanService)
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/balance", loanHandler.UpdateLoanBalance)
				r.Delete("/", loanHandler.DeleteLoan)
			})

			r.Route("/transactions", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(transactionService)
				r.Get("/", transactionHandler.Transactions)
				r.Post("/", transactionHandler.CreateTransaction)

				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Delete("/", transactionHandler.DeleteTransaction)
				})
			})
		})
	})

	return r
}
