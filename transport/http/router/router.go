package router

import (
	"biletado/internal/handlers/auth"
	"biletado/internal/handlers/reservation"
	"biletado/internal/handlers/status"

	_ "biletado/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	Status      status.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api/v3", func(routerGroup chi.Router) {
		routerGroup.Route("/reservations", func(reservationGroup chi.Router) {
			r.DomainHandlers.Status.Router(reservationGroup)
			r.DomainHandlers.Reservation.Router(reservationGroup)
		})

		r.DomainHandlers.Auth.Router(routerGroup)
	})

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
