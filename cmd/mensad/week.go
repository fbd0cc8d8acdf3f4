package main

import (
	"encoding/json"
	"fmt"

	"github.com/pwalkow/mensa"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// weekRPS limits requests against the origin endpoint while fetching a
// week concurrently.
const weekRPS = 2.0

// Run executes the week command. It fetches Monday through Friday of the
// week containing the given date for a single venue.
func (c *WeekCmd) Run(deps *Dependencies) error {
	date := mensa.Today()
	if c.Date != "" {
		parsed, err := mensa.ParseDate(c.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	// Back up to Monday; Go weekdays start at Sunday.
	offset := (int(date.Weekday()) + 6) % 7
	monday := date.AddDays(-offset)

	limiter := rate.NewLimiter(rate.Limit(weekRPS), 1)
	g, ctx := errgroup.WithContext(deps.Ctx)

	menus := make([]*mensa.MensaMenu, 5)
	for i := range menus {
		i := i
		day := monday.AddDays(i)
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			menu, err := deps.Menus.Menu(ctx, c.Mensa, day)
			if err != nil {
				return fmt.Errorf("%s (%s): %w", day, day.Weekday(), err)
			}
			menus[i] = menu
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out, err := json.MarshalIndent(menus, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
