package middleware

import (
	"crypto/subtle"
	"net/http"

	"lifecare/config"
	"lifecare/infras/otel"
	"lifecare/shared/constant"
	"lifecare/shared/failure"
	"lifecare/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards operational endpoints.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey only lets through requests whose X-API-Key header matches APP_API_KEY. With no key
// configured every request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		if err := m.check(request.Header.Get(constant.RequestHeaderAPIKey)); err != nil {
			log.Warn().Err(err).Str("path", request.URL.Path).Msg("rejected request with invalid api key")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func (m *authImpl) check(apiKey string) error {
	expected := m.cfg.App.APIKey

	switch {
	case expected == "":
		return failure.Forbidden("api key access is disabled") //nolint:wrapcheck
	case apiKey == "":
		return failure.Unauthorized("missing api key") //nolint:wrapcheck
	case subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1:
		return failure.Forbidden("invalid api key") //nolint:wrapcheck
	}

	return nil
}
