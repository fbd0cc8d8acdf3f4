package mock

import (
	"context"

	"github.com/pwalkow/mensa"
)

var _ mensa.MenuStore = (*MenuStore)(nil)

// MenuStore is a mock implementation of mensa.MenuStore.
type MenuStore struct {
	SaveMenuFn       func(ctx context.Context, rec *mensa.MenuRecord) error
	FindMenuByDateFn func(ctx context.Context, mensaID string, date mensa.Date) (*mensa.MenuRecord, error)
	FindMenusFn      func(ctx context.Context, filter mensa.MenuFilter) ([]*mensa.MenuRecord, error)
}

func (s *MenuStore) SaveMenu(ctx context.Context, rec *mensa.MenuRecord) error {
	return s.SaveMenuFn(ctx, rec)
}

func (s *MenuStore) FindMenuByDate(ctx context.Context, mensaID string, date mensa.Date) (*mensa.MenuRecord, error) {
	return s.FindMenuByDateFn(ctx, mensaID, date)
}

func (s *MenuStore) FindMenus(ctx context.Context, filter mensa.MenuFilter) ([]*mensa.MenuRecord, error) {
	return s.FindMenusFn(ctx, filter)
}
