package system_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifecare/config"
	otelMocks "lifecare/infras/otel/mocks"
	"lifecare/internal/domains/content/mocks"
	"lifecare/internal/domains/content/model/dto"
	"lifecare/internal/handlers/system"
	"lifecare/shared/constant"
	"lifecare/shared/failure"
	"lifecare/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRevalidate(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		target   string
		mock     func(svc *mocks.MockContent)
		wantCode int
		wantBody string
	}{
		{
			name:     "missing key",
			target:   "/v1/revalidate?tag=doctors",
			mock:     func(*mocks.MockContent) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong key",
			apiKey:   "guess",
			target:   "/v1/revalidate?tag=doctors",
			mock:     func(*mocks.MockContent) {},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "revalidates tag",
			apiKey: "secret",
			target: "/v1/revalidate?tag=doctors",
			mock: func(svc *mocks.MockContent) {
				svc.EXPECT().Revalidate(gomock.Any(), "doctors").Return(dto.RevalidateResponse{Tag: "doctors", Revalidated: true}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"data":{"tag":"doctors","revalidated":true}}`,
		},
		{
			name:   "unknown tag",
			apiKey: "secret",
			target: "/v1/revalidate?tag=pets",
			mock: func(svc *mocks.MockContent) {
				svc.EXPECT().Revalidate(gomock.Any(), "pets").Return(dto.RevalidateResponse{}, failure.BadRequestFromString(`unknown tag "pets"`))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"unknown tag \"pets\""}`,
		},
		{
			name:   "cache failure is hidden",
			apiKey: "secret",
			target: "/v1/revalidate?tag=blogs",
			mock: func(svc *mocks.MockContent) {
				svc.EXPECT().Revalidate(gomock.Any(), "blogs").Return(dto.RevalidateResponse{}, failure.InternalError(errors.New("redis: connection refused")))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockContent(ctrl)
			tt.mock(svc)

			cfg := &config.Config{}
			cfg.App.APIKey = "secret"

			ot := otelMocks.NewOtel()
			handler := system.New(svc, middleware.NewAuthMiddleware(ot, cfg), ot)

			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
