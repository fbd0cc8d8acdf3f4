// Package slog provides logging decorators for mensa services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwalkow/mensa"
)

// Ensure LoggingMenuService implements mensa.MenuService.
var _ mensa.MenuService = (*LoggingMenuService)(nil)

// LoggingMenuService wraps a MenuService with structured logging.
type LoggingMenuService struct {
	next   mensa.MenuService
	logger *slog.Logger
}

// NewLoggingMenuService creates a new LoggingMenuService.
func NewLoggingMenuService(next mensa.MenuService, logger *slog.Logger) *LoggingMenuService {
	return &LoggingMenuService{next: next, logger: logger}
}

// Menu delegates to the wrapped service and logs the operation.
func (s *LoggingMenuService) Menu(ctx context.Context, mensaID string, date mensa.Date) (menu *mensa.MensaMenu, err error) {
	defer func(begin time.Time) {
		groups, meals := 0, 0
		if menu != nil {
			groups = len(menu.Groups)
			for _, g := range menu.Groups {
				meals += len(g.Meals)
			}
		}
		s.logger.Info("menu load",
			"mensa", mensaID,
			"date", date.String(),
			"groups", groups,
			"meals", meals,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Menu(ctx, mensaID, date)
}
