package system

import (
	"net/http"

	"lifecare/infras/otel"
	"lifecare/internal/domains/content/service"
	"lifecare/shared/constant"
	"lifecare/transport/http/middleware"
	"lifecare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves operational endpoints that are not part of the public site.
type Handler struct {
	content    service.Content
	middleware middleware.Auth
	otel       otel.Otel
}

func New(content service.Content, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		content:    content,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.middleware.APIKey).Post("/revalidate", handler.Revalidate)
}

// Revalidate drops cached CMS content for one tag.
// @Summary Revalidate cached content
// @Tags System
// @Produce json
// @Param tag query string true "Cache tag" Enums(doctors, services, reviews, blogs, clinic-info, boxes)
// @Success 200 {object} response.Data[dto.RevalidateResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/revalidate [post]
// @Security ApiKeyAuth
func (handler *Handler) Revalidate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Revalidate")
	defer scope.End()

	res, err := handler.content.Revalidate(ctx, request.URL.Query().Get(constant.RequestParamTag))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to revalidate content")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
