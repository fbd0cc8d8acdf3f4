package main

import (
	"fmt"
	"time"

	"github.com/pwalkow/mensa"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := mensa.MenuFilter{Limit: c.Limit}
	if c.Mensa != "" {
		filter.MensaID = &c.Mensa
	}

	records, err := deps.Store.FindMenus(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensa.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No menus recorded yet. Run 'mensad serve' with --db to record them.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(deps.Stdout, "%s  mensa %s  %s  %d groups  %s\n",
			rec.FetchedAt.Format(time.RFC3339), rec.MensaID, rec.Date,
			len(rec.Menu.Groups), rec.ContentHash)
	}

	return nil
}
