// Package mock provides function-field mock implementations of the mensa
// service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/pwalkow/mensa"
)

var _ mensa.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of mensa.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, mensaID string, date mensa.Date) (string, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, mensaID string, date mensa.Date) (string, error) {
	return f.FetchPageFn(ctx, mensaID, date)
}
