package router

import (
	"lifecare/internal/handlers/booking"
	"lifecare/internal/handlers/content"
	"lifecare/internal/handlers/system"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Content content.Handler
	Booking booking.Handler
	System  system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.System.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
