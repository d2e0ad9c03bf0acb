// Package cms is the HTTP client for the headless content API.
package cms

//go:generate go run go.uber.org/mock/mockgen -source=./cms.go -destination=./mocks/cms_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lifecare/config"
	"lifecare/infras/metrics"
	"lifecare/infras/otel"
	"lifecare/shared"
	"lifecare/shared/cache"
	"lifecare/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	DefaultRevalidateSeconds = 60

	cacheKeyPrefix    = "cms"
	untaggedCacheTag  = "untagged"
	maxErrorBodyBytes = 300
)

// FetchOptions carries the freshness hints of a request. Revalidate is the cache lifetime
// in seconds (0 means the default, negative disables caching). Tags name the groups the
// response can later be purged by.
type FetchOptions struct {
	Revalidate int
	Tags       []string
}

type Client interface {
	Fetch(ctx context.Context, collection string, query url.Values, opts FetchOptions) ([]byte, error)
	Invalidate(ctx context.Context, tag string) error
}

// StatusError is returned when the content API answers with a non-2xx status.
type StatusError struct {
	Collection string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms: %s returned status %d: %s", e.Collection, e.StatusCode, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError

	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

type client struct {
	baseURL           string
	token             string
	defaultRevalidate int
	httpClient        *http.Client
	cache             cache.RedisCache
	otel              otel.Otel
	metrics           *metrics.Metrics
}

func New(cfg *config.Config, redisCache cache.RedisCache, ot otel.Otel, m *metrics.Metrics) Client {
	httpClient := &http.Client{}
	if cfg.External.CMS.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cfg.External.CMS.TimeoutSeconds) * time.Second
	}

	revalidate := cfg.External.CMS.RevalidateSeconds
	if revalidate == 0 {
		revalidate = DefaultRevalidateSeconds
	}

	return &client{
		baseURL:           strings.TrimRight(cfg.External.CMS.BaseURL, "/"),
		token:             cfg.External.CMS.Token,
		defaultRevalidate: revalidate,
		httpClient:        httpClient,
		cache:             redisCache,
		otel:              ot,
		metrics:           m,
	}
}

func cacheKey(tag, collection string, query url.Values) string {
	return shared.BuildCacheKey(cacheKeyPrefix, tag, collection+"?"+query.Encode())
}

func tagsOf(opts FetchOptions) []string {
	if len(opts.Tags) == 0 {
		return []string{untaggedCacheTag}
	}

	return opts.Tags
}

// Fetch implements Client. Responses are cached per tag for the revalidation period;
// cache failures never fail the fetch.
func (c *client) Fetch(ctx context.Context, collection string, query url.Values, opts FetchOptions) (body []byte, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cms.Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"cms.collection": collection,
		"cms.tags":       opts.Tags,
	})

	revalidate := opts.Revalidate
	if revalidate == 0 {
		revalidate = c.defaultRevalidate
	}

	tags := tagsOf(opts)

	if revalidate > 0 {
		var cached string

		cacheErr := c.cache.Get(ctx, cacheKey(tags[0], collection, query), &cached)
		if cacheErr == nil {
			scope.AddEvent("cache hit")

			return []byte(cached), nil
		}

		if !cache.IsMiss(cacheErr) {
			log.Warn().Err(cacheErr).Str("collection", collection).Msg("cms cache lookup failed, fetching from origin")
		}
	}

	body, err = c.get(ctx, collection, query)
	if err != nil {
		return nil, err
	}

	if revalidate > 0 {
		for _, tag := range tags {
			if cacheErr := c.cache.Save(ctx, cacheKey(tag, collection, query), string(body), revalidate); cacheErr != nil {
				log.Warn().Err(cacheErr).Str("collection", collection).Str("tag", tag).Msg("failed to cache cms response")
			}
		}
	}

	return body, nil
}

func (c *client) get(ctx context.Context, collection string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + "/api/" + collection
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: create request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if c.token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveCMSRequest(collection, "error", time.Since(start).Seconds())

		return nil, fmt.Errorf("cms: request %s: %w", collection, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveCMSRequest(collection, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s response: %w", collection, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := string(body)
		if len(msg) > maxErrorBodyBytes {
			msg = msg[:maxErrorBodyBytes]
		}

		return nil, &StatusError{Collection: collection, StatusCode: resp.StatusCode, Body: msg}
	}

	return body, nil
}

// Invalidate implements Client. It drops every cached response stored under tag.
func (c *client) Invalidate(ctx context.Context, tag string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cms.Invalidate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("cms.tag", tag)

	if err = c.cache.Clear(ctx, shared.BuildCacheKey(cacheKeyPrefix, tag, constant.Asterix)); err != nil {
		return fmt.Errorf("cms: invalidate %s: %w", tag, err)
	}

	log.Info().Str("tag", tag).Msg("cms cache invalidated")

	return nil
}
