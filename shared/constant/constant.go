package constant

import (
	"time"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSortDir  = "sort_dir"
	RequestParamSlug     = "slug"
	RequestParamType     = "type"
	RequestParamTag      = "tag"
	RequestParamFeatured = "featured"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	SlotFormat     = "15:04"
)

const (
	OtelServiceScopeName  = "service"
	OtelHandlerScopeName  = "handler"
	OtelGatewayScopeName  = "gateway"
	OtelExternalScopeName = "external"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
