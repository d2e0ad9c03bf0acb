// Package gateway reads clinic content from the headless CMS. Every operation is total:
// failures are logged and counted, then reported as an empty result.
package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"context"
	"net/url"

	"lifecare/config"
	"lifecare/infras/cms"
	"lifecare/infras/metrics"
	"lifecare/infras/otel"
	"lifecare/internal/domains/content/model"
	"lifecare/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	CollectionDoctors    = "doctors"
	CollectionServices   = "services"
	CollectionReviews    = "reviews"
	CollectionBlogs      = "blogs"
	CollectionClinicInfo = "clinic-info"
	CollectionBoxes      = "boxes"
)

// Tags lists every cache tag the gateway stores responses under.
var Tags = []string{
	CollectionDoctors,
	CollectionServices,
	CollectionReviews,
	CollectionBlogs,
	CollectionClinicInfo,
	CollectionBoxes,
}

type Gateway interface {
	GetDoctors(ctx context.Context) []model.Doctor
	GetFeaturedDoctors(ctx context.Context) []model.Doctor
	GetServices(ctx context.Context) []model.Service
	GetServicesByType(ctx context.Context, serviceType model.ServiceType) []model.Service
	GetServiceBySlug(ctx context.Context, slug string) (model.Service, bool)
	GetReviews(ctx context.Context) []model.Review
	GetBlogs(ctx context.Context) []model.BlogPost
	GetBlogBySlug(ctx context.Context, slug string) (model.BlogPost, bool)
	GetBlogSlugs(ctx context.Context) []string
	GetClinicInfo(ctx context.Context) (model.ClinicInfo, bool)
	GetBoxes(ctx context.Context) []model.Box
}

type gatewayImpl struct {
	client     cms.Client
	siteURL    string
	cmsBaseURL string
	otel       otel.Otel
	metrics    *metrics.Metrics
}

func New(client cms.Client, cfg *config.Config, otel otel.Otel, m *metrics.Metrics) Gateway {
	return &gatewayImpl{
		client:     client,
		siteURL:    cfg.App.SiteURL,
		cmsBaseURL: cfg.External.CMS.BaseURL,
		otel:       otel,
		metrics:    m,
	}
}

func sortByOrder() url.Values {
	return url.Values{"sort": {"order:asc"}}
}

func equals(query url.Values, field, value string) url.Values {
	query.Set("filters["+field+"][$eq]", value)

	return query
}

// list fetches a collection and converts each record. Errors end up as an empty slice.
func list[R, M any](
	ctx context.Context,
	g *gatewayImpl,
	op, collection string,
	query url.Values,
	convert func(R) M,
) []M {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+"."+op)
	defer scope.End()

	scope.SetAttribute("cms.collection", collection)

	body, err := g.client.Fetch(ctx, collection, query, cms.FetchOptions{Tags: []string{collection}})
	if err == nil {
		var records []R

		records, err = decodeList[R](body)
		if err == nil {
			items := make([]M, 0, len(records))
			for _, record := range records {
				items = append(items, convert(record))
			}

			outcome := metrics.OutcomeHit
			if len(items) == 0 {
				outcome = metrics.OutcomeEmpty
			}

			g.metrics.ObserveContentFetch(collection, outcome)
			scope.SetAttribute("cms.count", len(items))

			return items
		}
	}

	scope.TraceError(err)
	log.Error().Err(err).Str("op", op).Str("collection", collection).Msg("failed to fetch content")
	g.metrics.ObserveContentFetch(collection, metrics.OutcomeError)

	return []M{}
}

// first returns the first element of a filtered lookup.
func first[M any](g *gatewayImpl, collection string, items []M) (M, bool) {
	if len(items) == 0 {
		var zero M

		g.metrics.ObserveContentFetch(collection, metrics.OutcomeNotFound)

		return zero, false
	}

	return items[0], true
}

func (g *gatewayImpl) GetDoctors(ctx context.Context) []model.Doctor {
	query := sortByOrder()
	query.Set("populate", "image")

	return list(ctx, g, "GetDoctors", CollectionDoctors, query, g.toDoctor)
}

func (g *gatewayImpl) GetFeaturedDoctors(ctx context.Context) []model.Doctor {
	query := equals(sortByOrder(), "featured", "true")
	query.Set("populate", "image")

	return list(ctx, g, "GetFeaturedDoctors", CollectionDoctors, query, g.toDoctor)
}

func (g *gatewayImpl) GetServices(ctx context.Context) []model.Service {
	return list(ctx, g, "GetServices", CollectionServices, sortByOrder(), g.toService)
}

func (g *gatewayImpl) GetServicesByType(ctx context.Context, serviceType model.ServiceType) []model.Service {
	query := equals(sortByOrder(), "serviceType", string(serviceType))

	return list(ctx, g, "GetServicesByType", CollectionServices, query, g.toService)
}

func (g *gatewayImpl) GetServiceBySlug(ctx context.Context, slug string) (model.Service, bool) {
	query := equals(url.Values{}, "slug", slug)

	return first(g, CollectionServices, list(ctx, g, "GetServiceBySlug", CollectionServices, query, g.toService))
}

// GetReviews returns published reviews, newest first.
func (g *gatewayImpl) GetReviews(ctx context.Context) []model.Review {
	query := equals(url.Values{"sort": {"reviewDate:desc"}}, "published", "true")

	reviews := list(ctx, g, "GetReviews", CollectionReviews, query, g.toReview)

	published := make([]model.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.Published {
			published = append(published, review)
		}
	}

	return published
}

func (g *gatewayImpl) GetBlogs(ctx context.Context) []model.BlogPost {
	query := url.Values{"sort": {"publicationDate:desc"}, "populate": {"coverImage"}}

	return list(ctx, g, "GetBlogs", CollectionBlogs, query, g.toBlogPost)
}

func (g *gatewayImpl) GetBlogBySlug(ctx context.Context, slug string) (model.BlogPost, bool) {
	query := equals(url.Values{"populate": {"coverImage"}}, "slug", slug)

	return first(g, CollectionBlogs, list(ctx, g, "GetBlogBySlug", CollectionBlogs, query, g.toBlogPost))
}

func (g *gatewayImpl) GetBlogSlugs(ctx context.Context) []string {
	query := equals(url.Values{"fields[0]": {"slug"}}, "published", "true")

	slugs := list(ctx, g, "GetBlogSlugs", CollectionBlogs, query, func(r slugRecord) string { return r.Slug })

	nonEmpty := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			nonEmpty = append(nonEmpty, slug)
		}
	}

	return nonEmpty
}

func (g *gatewayImpl) GetClinicInfo(ctx context.Context) (info model.ClinicInfo, found bool) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".GetClinicInfo")
	defer scope.End()

	body, err := g.client.Fetch(ctx, CollectionClinicInfo, url.Values{}, cms.FetchOptions{Tags: []string{CollectionClinicInfo}})
	if err == nil {
		var record clinicInfoRecord

		record, found, err = decodeSingle[clinicInfoRecord](body)
		if err == nil {
			if !found {
				g.metrics.ObserveContentFetch(CollectionClinicInfo, metrics.OutcomeNotFound)

				return info, false
			}

			g.metrics.ObserveContentFetch(CollectionClinicInfo, metrics.OutcomeHit)

			return g.toClinicInfo(record), true
		}
	}

	scope.TraceError(err)
	log.Error().Err(err).Str("collection", CollectionClinicInfo).Msg("failed to fetch clinic info")
	g.metrics.ObserveContentFetch(CollectionClinicInfo, metrics.OutcomeError)

	return info, false
}

func (g *gatewayImpl) GetBoxes(ctx context.Context) []model.Box {
	return list(ctx, g, "GetBoxes", CollectionBoxes, sortByOrder(), g.toBox)
}
