package content_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "lifecare/infras/otel/mocks"
	"lifecare/internal/domains/content/mocks"
	"lifecare/internal/domains/content/model"
	"lifecare/internal/domains/content/model/dto"
	"lifecare/internal/handlers/content"
	gDto "lifecare/shared/dto"
	"lifecare/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockContent, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockContent(ctrl)

	handler := content.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestGetDoctors_FeaturedQuery(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		featured bool
	}{
		{name: "no filter", target: "/v1/doctors", featured: false},
		{name: "featured only", target: "/v1/doctors?featured=true", featured: true},
		{name: "unparseable flag", target: "/v1/doctors?featured=maybe", featured: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			svc.EXPECT().GetDoctors(gomock.Any(), tt.featured).Return(dto.DoctorsResponse{
				Doctors: []dto.DoctorResponse{{Name: "Dr. Anoop Sugunan", Specialty: "neurology"}},
				Source:  model.SourceCatalog,
			})

			rec := serve(router, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"data":{"doctors":[{"name":"Dr. Anoop Sugunan","qualifications":"","specialty":"neurology","specialty_label":"","availability":"","image_url":"","featured":false,"primary_care":false,"order":0}],"source":"catalog"}}`,
				rec.Body.String())
		})
	}
}

func TestGetServices_UnknownType(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetServices(gomock.Any(), "surgery").Return(dto.ServicesResponse{}, failure.BadRequestFromString(`unknown service type "surgery"`))

	rec := serve(router, http.MethodGet, "/v1/services?type=surgery")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"unknown service type \"surgery\""}`, rec.Body.String())
}

func TestGetServiceBySlug(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetServiceBySlug(gomock.Any(), "physiotherapy").Return(dto.ServiceResponse{Name: "Physiotherapy", Slug: "physiotherapy"}, nil)
	svc.EXPECT().GetServiceBySlug(gomock.Any(), "unknown").Return(dto.ServiceResponse{}, failure.NotFound("service not found"))

	rec := serve(router, http.MethodGet, "/v1/services/physiotherapy")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.ServiceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Physiotherapy", body.Data.Name)

	rec = serve(router, http.MethodGet, "/v1/services/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"service not found"}`, rec.Body.String())
}

func TestGetBlogs_PassesPagination(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetBlogs(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 3}).Return(dto.BlogsResponse{
		Blogs:      []dto.BlogPostResponse{},
		Pagination: gDto.Pagination{Page: 2, Limit: 3, Total: 4, TotalPage: 2},
		Source:     model.SourceCMS,
	})

	rec := serve(router, http.MethodGet, "/v1/blogs?page=2&limit=3")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"blogs":[],"pagination":{"page":2,"limit":3,"total":4,"total_page":2},"source":"cms"}}`,
		rec.Body.String())
}

func TestGetBlogs_DefaultsPagination(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetBlogs(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).Return(dto.BlogsResponse{})

	rec := serve(router, http.MethodGet, "/v1/blogs")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBlogRoutes_SlugsAreNotASlug(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetBlogSlugs(gomock.Any()).Return(dto.BlogSlugsResponse{Slugs: []string{"healthy-spine"}, Source: model.SourceCMS})
	svc.EXPECT().GetBlogBySlug(gomock.Any(), "healthy-spine").Return(dto.BlogPostResponse{Title: "Healthy spine", Slug: "healthy-spine"}, nil)
	svc.EXPECT().GetBlogBySlug(gomock.Any(), "missing").Return(dto.BlogPostResponse{}, failure.NotFound("blog post not found"))

	rec := serve(router, http.MethodGet, "/v1/blogs/slugs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"slugs":["healthy-spine"],"source":"cms"}}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/v1/blogs/healthy-spine")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Healthy spine"`)

	rec = serve(router, http.MethodGet, "/v1/blogs/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogRoutes(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetClinicInfo(gomock.Any()).Return(dto.ClinicInfoResponse{Phone: "+91 98470 00000", Source: model.SourceCatalog})
	svc.EXPECT().GetBoxes(gomock.Any()).Return(dto.BoxesResponse{})
	svc.EXPECT().GetReviews(gomock.Any()).Return(dto.ReviewsResponse{})
	svc.EXPECT().GetLabs(gomock.Any()).Return(dto.LabsResponse{})
	svc.EXPECT().GetPhysiotherapy(gomock.Any()).Return(dto.PhysiotherapyResponse{})
	svc.EXPECT().GetHomeCare(gomock.Any()).Return(dto.HomeCareResponse{})

	for _, target := range []string{"/v1/clinic-info", "/v1/boxes", "/v1/reviews", "/v1/labs", "/v1/physiotherapy", "/v1/home-care"} {
		rec := serve(router, http.MethodGet, target)

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"data"`, target)
	}
}
