package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"lifecare/infras/cms"
	"lifecare/infras/otel"
	"lifecare/internal/domains/content/catalog"
	"lifecare/internal/domains/content/gateway"
	"lifecare/internal/domains/content/model"
	"lifecare/internal/domains/content/model/dto"
	"lifecare/shared"
	"lifecare/shared/constant"
	gDto "lifecare/shared/dto"
	"lifecare/shared/failure"
	"lifecare/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Content interface {
	GetClinicInfo(ctx context.Context) dto.ClinicInfoResponse
	GetBoxes(ctx context.Context) dto.BoxesResponse
	GetDoctors(ctx context.Context, featuredOnly bool) dto.DoctorsResponse
	GetServices(ctx context.Context, serviceType string) (dto.ServicesResponse, error)
	GetServiceBySlug(ctx context.Context, slug string) (dto.ServiceResponse, error)
	GetReviews(ctx context.Context) dto.ReviewsResponse
	GetBlogs(ctx context.Context, params gDto.QueryParams) dto.BlogsResponse
	GetBlogBySlug(ctx context.Context, slug string) (dto.BlogPostResponse, error)
	GetBlogSlugs(ctx context.Context) dto.BlogSlugsResponse
	GetLabs(ctx context.Context) dto.LabsResponse
	GetPhysiotherapy(ctx context.Context) dto.PhysiotherapyResponse
	GetHomeCare(ctx context.Context) dto.HomeCareResponse
	Revalidate(ctx context.Context, tag string) (dto.RevalidateResponse, error)
}

type serviceImpl struct {
	gateway gateway.Gateway
	client  cms.Client
	otel    otel.Otel
}

func New(gw gateway.Gateway, client cms.Client, otel otel.Otel) Content {
	return &serviceImpl{
		gateway: gw,
		client:  client,
		otel:    otel,
	}
}

func (s *serviceImpl) GetClinicInfo(ctx context.Context) (res dto.ClinicInfoResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClinicInfo")
	defer scope.End()

	info, source, _ := resolveOne(ctx, s.gateway.GetClinicInfo, func() (model.ClinicInfo, bool) {
		return catalog.ClinicInfo(), true
	})

	res.FromModel(info, source)

	return res
}

func (s *serviceImpl) GetBoxes(ctx context.Context) (res dto.BoxesResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBoxes")
	defer scope.End()

	boxes, source := resolve(ctx, s.gateway.GetBoxes, catalog.ValueBoxes)
	res.FromModels(boxes, source)

	return res
}

func (s *serviceImpl) GetDoctors(ctx context.Context, featuredOnly bool) (res dto.DoctorsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDoctors")
	defer scope.End()

	scope.SetAttribute("featured", featuredOnly)

	var (
		doctors []model.Doctor
		source  model.Source
	)

	if featuredOnly {
		doctors, source = resolve(ctx, s.gateway.GetFeaturedDoctors, catalog.FeaturedDoctors)
	} else {
		doctors, source = resolve(ctx, s.gateway.GetDoctors, catalog.Doctors)
	}

	res.FromModels(doctors, source)

	return res
}

func (s *serviceImpl) GetServices(ctx context.Context, serviceType string) (res dto.ServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if serviceType == "" {
		services, source := resolve(ctx, s.gateway.GetServices, catalog.Services)
		res.FromModels(services, source)

		return res, nil
	}

	parsed, ok := model.ParseServiceType(serviceType)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown service type %q", serviceType)) // nolint:wrapcheck
	}

	scope.SetAttribute("service_type", string(parsed))

	services, source := resolve(ctx,
		func(ctx context.Context) []model.Service { return s.gateway.GetServicesByType(ctx, parsed) },
		func() []model.Service { return catalog.ServicesByType(parsed) },
	)
	res.FromModels(services, source)

	return res, nil
}

func (s *serviceImpl) GetServiceBySlug(ctx context.Context, slug string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServiceBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	service, source, found := resolveOne(ctx,
		func(ctx context.Context) (model.Service, bool) { return s.gateway.GetServiceBySlug(ctx, slug) },
		func() (model.Service, bool) { return catalog.ServiceBySlug(slug) },
	)
	if !found {
		log.Debug().Str("slug", slug).Msg("service not found")

		return res, failure.NotFound(model.EntityService + " not found") // nolint:wrapcheck
	}

	res.FromModel(service)
	res.Source = source

	return res, nil
}

// GetReviews never returns unpublished reviews, whichever side they come from.
func (s *serviceImpl) GetReviews(ctx context.Context) (res dto.ReviewsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReviews")
	defer scope.End()

	reviews, source := resolve(ctx, s.gateway.GetReviews, catalog.Reviews)
	reviews = slices.DeleteFunc(reviews, func(review model.Review) bool { return !review.Published })

	res.FromModels(reviews, source, timezone.Now())

	return res
}

func (s *serviceImpl) GetBlogs(ctx context.Context, params gDto.QueryParams) (res dto.BlogsResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlogs")
	defer scope.End()

	posts, source := resolve(ctx, s.gateway.GetBlogs, catalog.BlogPosts)
	page, pagination := shared.Paginate(byPublicationDate(posts, params.SortDir), params)

	res.FromModels(page, pagination, source)

	return res
}

// byPublicationDate orders a copy of posts newest first, or oldest first for SortDirAsc.
func byPublicationDate(posts []model.BlogPost, sortDir string) []model.BlogPost {
	sorted := slices.Clone(posts)

	slices.SortStableFunc(sorted, func(a, b model.BlogPost) int {
		if sortDir == gDto.SortDirAsc {
			return a.PublicationDate.Compare(b.PublicationDate)
		}

		return b.PublicationDate.Compare(a.PublicationDate)
	})

	return sorted
}

func (s *serviceImpl) GetBlogBySlug(ctx context.Context, slug string) (res dto.BlogPostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlogBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	post, source, found := resolveOne(ctx,
		func(ctx context.Context) (model.BlogPost, bool) { return s.gateway.GetBlogBySlug(ctx, slug) },
		func() (model.BlogPost, bool) { return catalog.BlogPostBySlug(slug) },
	)
	if !found {
		log.Debug().Str("slug", slug).Msg("blog post not found")

		return res, failure.NotFound(model.EntityBlogPost + " not found") // nolint:wrapcheck
	}

	res.FromModel(post, true)
	res.Source = source

	return res, nil
}

func (s *serviceImpl) GetBlogSlugs(ctx context.Context) dto.BlogSlugsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlogSlugs")
	defer scope.End()

	slugs, source := resolve(ctx, s.gateway.GetBlogSlugs, catalog.BlogSlugs)

	return dto.BlogSlugsResponse{Slugs: slugs, Source: source}
}

func (s *serviceImpl) GetLabs(_ context.Context) dto.LabsResponse {
	return dto.LabsResponse{
		LabTests:      catalog.LabTests(),
		NeuroLabTests: catalog.NeuroLabTests(),
	}
}

func (s *serviceImpl) GetPhysiotherapy(_ context.Context) dto.PhysiotherapyResponse {
	return dto.PhysiotherapyResponse{
		Services:   catalog.PhysioServices(),
		Conditions: catalog.PhysioConditions(),
	}
}

func (s *serviceImpl) GetHomeCare(_ context.Context) (res dto.HomeCareResponse) {
	res.FromModels(catalog.HomeCareServices(), catalog.ServiceAreas())

	return res
}

// Revalidate drops the cached CMS responses stored under tag. Only the gateway's tags are accepted.
func (s *serviceImpl) Revalidate(ctx context.Context, tag string) (res dto.RevalidateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revalidate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if tag == "" {
		return res, failure.BadRequestFromString("tag is required") // nolint:wrapcheck
	}

	if !slices.Contains(gateway.Tags, tag) {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown tag %q", tag)) // nolint:wrapcheck
	}

	if err = s.client.Invalidate(ctx, tag); err != nil {
		log.Error().Err(err).Str("tag", tag).Msg("failed to revalidate content")

		return res, failure.InternalError(fmt.Errorf("failed to revalidate %s: %w", tag, err)) // nolint:wrapcheck
	}

	log.Info().Str("tag", tag).Msg("content revalidated")

	return dto.RevalidateResponse{Tag: tag, Revalidated: true}, nil
}
