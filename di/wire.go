//go:build wireinject
// +build wireinject

package di

import (
	"visitorpass/config"
	"visitorpass/infras/broker"
	"visitorpass/infras/jwt"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/infras/redis"
	"visitorpass/internal/jobs"
	"visitorpass/permissions"
	"visitorpass/shared/cache"
	"visitorpass/shared/transaction"
	"visitorpass/transport/http"
	"visitorpass/transport/http/middleware"
	"visitorpass/transport/http/router"

	accommodationRepository "visitorpass/internal/domains/accommodation/repository"
	accommodationService "visitorpass/internal/domains/accommodation/service"
	bookingRepository "visitorpass/internal/domains/booking/repository"
	bookingService "visitorpass/internal/domains/booking/service"
	cancellationRepository "visitorpass/internal/domains/cancellation/repository"
	cancellationService "visitorpass/internal/domains/cancellation/service"
	dashboardService "visitorpass/internal/domains/dashboard/service"
	ecoRepository "visitorpass/internal/domains/eco/repository"
	ecoService "visitorpass/internal/domains/eco/service"
	outboxRepository "visitorpass/internal/domains/outbox/repository"
	outboxService "visitorpass/internal/domains/outbox/service"
	paymentRepository "visitorpass/internal/domains/payment/repository"
	paymentService "visitorpass/internal/domains/payment/service"
	refundRepository "visitorpass/internal/domains/refund/repository"
	refundService "visitorpass/internal/domains/refund/service"
	slotRepository "visitorpass/internal/domains/slot/repository"
	slotService "visitorpass/internal/domains/slot/service"
	userRepository "visitorpass/internal/domains/user/repository"
	userService "visitorpass/internal/domains/user/service"

	accommodationHandler "visitorpass/internal/handlers/accommodation"
	bookingHandler "visitorpass/internal/handlers/booking"
	cancellationHandler "visitorpass/internal/handlers/cancellation"
	dashboardHandler "visitorpass/internal/handlers/dashboard"
	ecoHandler "visitorpass/internal/handlers/eco"
	healthHandler "visitorpass/internal/handlers/health"
	paymentHandler "visitorpass/internal/handlers/payment"
	refundHandler "visitorpass/internal/handlers/refund"
	slotHandler "visitorpass/internal/handlers/slot"
	userHandler "visitorpass/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	broker.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	transaction.New,
)

var repositories = wire.NewSet(
	slotRepository.New,
	accommodationRepository.New,
	bookingRepository.New,
	paymentRepository.New,
	refundRepository.New,
	ecoRepository.New,
	cancellationRepository.New,
	outboxRepository.New,
	userRepository.New,
)

var domains = wire.NewSet(
	outboxService.New,
	slotService.New,
	accommodationService.New,
	bookingService.New,
	paymentService.New,
	refundService.New,
	ecoService.New,
	cancellationService.New,
	dashboardService.New,
	userService.New,
)

var backgroundJobs = wire.NewSet(
	jobs.NewJobs,
	jobs.NewScheduler,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	slotHandler.New,
	accommodationHandler.New,
	bookingHandler.New,
	cancellationHandler.New,
	ecoHandler.New,
	paymentHandler.New,
	refundHandler.New,
	dashboardHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		backgroundJobs,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
