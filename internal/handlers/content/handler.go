package content

import (
	"net/http"

	"lifecare/infras/otel"
	"lifecare/internal/domains/content/service"
	"lifecare/shared"
	"lifecare/shared/constant"
	gDto "lifecare/shared/dto"
	"lifecare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/clinic-info", handler.GetClinicInfo)
	router.Get("/boxes", handler.GetBoxes)
	router.Get("/doctors", handler.GetDoctors)
	router.Get("/reviews", handler.GetReviews)
	router.Get("/labs", handler.GetLabs)
	router.Get("/physiotherapy", handler.GetPhysiotherapy)
	router.Get("/home-care", handler.GetHomeCare)

	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{slug}", handler.GetServiceBySlug)
	})

	router.Route("/blogs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBlogs)
		routerGroup.Get("/slugs", handler.GetBlogSlugs)
		routerGroup.Get("/{slug}", handler.GetBlogBySlug)
	})
}

// GetClinicInfo returns the clinic's contact details and opening hours.
// @Summary Get clinic info
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.ClinicInfoResponse]
// @Router /v1/clinic-info [get]
func (handler *Handler) GetClinicInfo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClinicInfo")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetClinicInfo(ctx))
}

// GetBoxes returns the value propositions shown on the home page.
// @Summary Get value boxes
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.BoxesResponse]
// @Router /v1/boxes [get]
func (handler *Handler) GetBoxes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoxes")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetBoxes(ctx))
}

// GetDoctors lists the clinic's doctors.
// @Summary Get doctors
// @Tags Content
// @Produce json
// @Param featured query boolean false "Only doctors featured on the home page"
// @Success 200 {object} response.Data[dto.DoctorsResponse]
// @Router /v1/doctors [get]
func (handler *Handler) GetDoctors(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDoctors")
	defer scope.End()

	featured := false
	if value := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamFeatured)); value != nil {
		featured = *value
	}

	response.WithJSON(writer, http.StatusOK, handler.service.GetDoctors(ctx, featured))
}

// GetServices lists services, optionally of one type.
// @Summary Get services
// @Tags Content
// @Produce json
// @Param type query string false "Service type" Enums(general, specialty, speciality, lab, neuro-lab, physio, home-care)
// @Success 200 {object} response.Data[dto.ServicesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	services, err := handler.service.GetServices(ctx, request.URL.Query().Get(constant.RequestParamType))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, services)
}

// GetServiceBySlug returns one service.
// @Summary Get a service by slug
// @Tags Content
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/services/{slug} [get]
func (handler *Handler) GetServiceBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceBySlug")
	defer scope.End()

	res, err := handler.service.GetServiceBySlug(ctx, chi.URLParam(request, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReviews returns the published reviews, newest first.
// @Summary Get reviews
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.ReviewsResponse]
// @Router /v1/reviews [get]
func (handler *Handler) GetReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetReviews(ctx))
}

// GetBlogs returns a page of blog posts without their content.
// @Summary Get blog posts
// @Tags Content
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.BlogsResponse]
// @Router /v1/blogs [get]
func (handler *Handler) GetBlogs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	response.WithJSON(writer, http.StatusOK, handler.service.GetBlogs(ctx, queryParams))
}

// GetBlogSlugs lists the slugs of published posts.
// @Summary Get blog slugs
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.BlogSlugsResponse]
// @Router /v1/blogs/slugs [get]
func (handler *Handler) GetBlogSlugs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogSlugs")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.GetBlogSlugs(ctx))
}

// GetBlogBySlug returns one post with its content.
// @Summary Get a blog post by slug
// @Tags Content
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} response.Data[dto.BlogPostResponse]
// @Failure 404 {object} response.Error
// @Router /v1/blogs/{slug} [get]
func (handler *Handler) GetBlogBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogBySlug")
	defer scope.End()

	post, err := handler.service.GetBlogBySlug(ctx, chi.URLParam(request, constant.RequestParamSlug))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, post)
}

// GetLabs lists the laboratory and neuro-diagnostic tests.
// @Summary Get lab tests
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.LabsResponse]
// @Router /v1/labs [get]
func (handler *Handler) GetLabs(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetLabs(request.Context()))
}

// GetPhysiotherapy lists physiotherapy offerings and the conditions treated.
// @Summary Get physiotherapy services
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.PhysiotherapyResponse]
// @Router /v1/physiotherapy [get]
func (handler *Handler) GetPhysiotherapy(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetPhysiotherapy(request.Context()))
}

// GetHomeCare lists home care offerings and the areas served.
// @Summary Get home care services
// @Tags Content
// @Produce json
// @Success 200 {object} response.Data[dto.HomeCareResponse]
// @Router /v1/home-care [get]
func (handler *Handler) GetHomeCare(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetHomeCare(request.Context()))
}
