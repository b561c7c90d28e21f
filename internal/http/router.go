package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/freightdesk/internal/http/invoicing"
	"github.com/MrJamesThe3rd/freightdesk/internal/http/load"
	tenant "github.com/MrJamesThe3rd/freightdesk/internal/http/middleware"
	"github.com/MrJamesThe3rd/freightdesk/internal/http/verification"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func New(
	opts Options,
	loadsV1 *load.Handler,
	invoicingV1 *invoicing.Handler,
	verificationV1 *verification.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(tenant.Tenant(opts.JWTSecret))

		r.Route("/loads", func(r chi.Router) {
			loadsV1.Routes(r)

			r.With(middleware.AllowContentType("application/json")).Group(invoicingV1.LoadRoutes)
		})

		r.Route("/invoices", invoicingV1.Routes)

		r.Route("/verification", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			verificationV1.Routes(r)
		})
	})

	return router
}
