package mock

import (
	"context"

	"github.com/pwalkow/mensa"
)

var _ mensa.MenuService = (*MenuService)(nil)

// MenuService is a mock implementation of mensa.MenuService.
type MenuService struct {
	MenuFn func(ctx context.Context, mensaID string, date mensa.Date) (*mensa.MensaMenu, error)
}

func (s *MenuService) Menu(ctx context.Context, mensaID string, date mensa.Date) (*mensa.MensaMenu, error) {
	return s.MenuFn(ctx, mensaID, date)
}
