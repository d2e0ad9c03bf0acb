package service

import (
	"context"

	"lifecare/internal/domains/content/model"
)

// Resolve returns the remote content, or local when the remote side has nothing.
func Resolve[T any](ctx context.Context, remote func(context.Context) []T, local []T) []T {
	items, _ := resolve(ctx, remote, func() []T { return local })

	return items
}

// resolve is Resolve with a lazily built fallback, also reporting which side answered.
func resolve[T any](ctx context.Context, remote func(context.Context) []T, local func() []T) ([]T, model.Source) {
	if items := remote(ctx); len(items) > 0 {
		return items, model.SourceCMS
	}

	return local(), model.SourceCatalog
}

// resolveOne is the single-item variant used by slug lookups.
func resolveOne[T any](ctx context.Context, remote func(context.Context) (T, bool), local func() (T, bool)) (T, model.Source, bool) {
	if item, ok := remote(ctx); ok {
		return item, model.SourceCMS, true
	}

	item, ok := local()

	return item, model.SourceCatalog, ok
}
