//go:build wireinject
// +build wireinject

package di

import (
	"lifecare/config"
	"lifecare/infras/cms"
	"lifecare/infras/mail"
	"lifecare/infras/metrics"
	"lifecare/infras/otel"
	"lifecare/infras/redis"
	bookingHandler "lifecare/internal/handlers/booking"
	contentHandler "lifecare/internal/handlers/content"
	systemHandler "lifecare/internal/handlers/system"
	"lifecare/shared/cache"
	"lifecare/transport/http"
	"lifecare/transport/http/middleware"
	"lifecare/transport/http/router"

	bookingService "lifecare/internal/domains/booking/service"
	contentGateway "lifecare/internal/domains/content/gateway"
	contentService "lifecare/internal/domains/content/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	metrics.NewRegistry,
	metrics.New,
	cms.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var contentDomain = wire.NewSet(
	contentGateway.New,
	contentService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var domains = wire.NewSet(
	contentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	contentHandler.New,
	bookingHandler.New,
	systemHandler.New,
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
