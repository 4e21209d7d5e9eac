package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/session", h.getSession)
	if h.gatherer != nil {
		router.Handle("/metrics", metrics.Handler(h.gatherer))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.limiter.Middleware)

		r.Post("/api/signup/otp", h.requestSignupOTP)
		r.Post("/api/signup", h.signup)
		r.Get("/api/businesses/{regNo}", h.resolveBusiness)
		r.Post("/api/login/otp", h.requestLoginOTP)
		r.Post("/api/login", h.login)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/logout", h.logout)

		r.Get("/api/profile", h.getProfile)
		r.Patch("/api/profile", h.updateProfile)

		r.Get("/api/billing", h.getBilling)
		r.Get("/api/settings", h.getSettings)

		r.Get("/api/dashboard", h.getDashboard)
		r.Get("/api/invoices", h.listInvoices)
		r.Get("/api/invoices/{id}", h.getInvoice)
		r.Post("/api/invoices/{id}/{action}", h.invoiceAction)
		r.Post("/api/uploads/{type}", h.upload)
	})

	router.MethodNotAllowed(h.methodNotAllowed)
	router.NotFound(h.notFound)

	return router
}
