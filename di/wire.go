//go:build wireinject
// +build wireinject

package di

import (
	"biletado/config"
	"biletado/infras/assets"
	"biletado/infras/jwt"
	"biletado/infras/otel"
	"biletado/infras/postgres"
	"biletado/infras/redis"
	"biletado/shared/cache"
	"biletado/transport/http"
	"biletado/transport/http/middleware"
	"biletado/transport/http/router"

	reservationRepository "biletado/internal/domains/reservation/repository"
	reservationService "biletado/internal/domains/reservation/service"
	reservationHandler "biletado/internal/handlers/reservation"

	statusService "biletado/internal/domains/status/service"
	statusHandler "biletado/internal/handlers/status"

	authService "biletado/internal/domains/auth/service"
	userRepository "biletado/internal/domains/user/repository"
	authHandler "biletado/internal/handlers/auth"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	assets.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var statusDomain = wire.NewSet(
	wire.Bind(new(statusService.StorePinger), new(*postgres.Connection)),
	statusService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	statusDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	statusHandler.New,
	authHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
