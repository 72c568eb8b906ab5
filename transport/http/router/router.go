package router

import (
	"visitorpass/internal/handlers/accommodation"
	"visitorpass/internal/handlers/booking"
	"visitorpass/internal/handlers/cancellation"
	"visitorpass/internal/handlers/dashboard"
	"visitorpass/internal/handlers/eco"
	"visitorpass/internal/handlers/health"
	"visitorpass/internal/handlers/payment"
	"visitorpass/internal/handlers/refund"
	"visitorpass/internal/handlers/slot"
	"visitorpass/internal/handlers/user"
	"visitorpass/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health        health.Handler
	Slot          slot.Handler
	Accommodation accommodation.Handler
	Booking       booking.Handler
	Cancellation  cancellation.Handler
	Eco           eco.Handler
	Payment       payment.Handler
	Refund        refund.Handler
	Dashboard     dashboard.Handler
	User          user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Cancellation.Router(routerGroup)
		r.DomainHandlers.Eco.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Refund.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
