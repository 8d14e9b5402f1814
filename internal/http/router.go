package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"car-service-booking/internal/http/middleware"
	"car-service-booking/pkg/metrics"
)

type Handlers struct {
	Root          http.HandlerFunc
	Health        http.HandlerFunc
	CreateSession http.HandlerFunc
	Logout        http.HandlerFunc
	ListServices  http.HandlerFunc
	GetService    http.HandlerFunc
	ListOrders    http.HandlerFunc
	CreateOrder   http.HandlerFunc
	UpdateStatus  http.HandlerFunc
	DeleteOrder   http.HandlerFunc
}

type Options struct {
	AllowedOrigin string
	// ProtectWrites additionally requires a session on order create, status
	// update and delete. Off by default: historically only the order list
	// was authenticated.
	ProtectWrites bool
	Log           zerolog.Logger
}

func NewRouter(h *Handlers, authmw *middleware.Auth, opts Options) http.Handler {
	r := chi.NewRouter()

	cors := &middleware.CORS{AllowedOrigin: opts.AllowedOrigin}
	r.Use(cors.Handler)
	r.Use(middleware.RequestLog(opts.Log))
	r.Use(metrics.Middleware("car-service-booking"))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Post("/session", h.CreateSession)
	r.Get("/session/logout", h.Logout)

	r.Get("/services", h.ListServices)
	r.Get("/services/{id}", h.GetService)

	r.Group(func(r chi.Router) {
		r.Use(authmw.Handler)
		r.Get("/orders", h.ListOrders)
	})

	r.Group(func(r chi.Router) {
		if opts.ProtectWrites {
			r.Use(authmw.Handler)
		}
		r.Post("/orders", h.CreateOrder)
		r.Put("/orders/status", h.UpdateStatus)
		r.Delete("/orders/{id}", h.DeleteOrder)
	})

	return r
}
