package main

import (
	"encoding/json"
	"fmt"

	"github.com/pwalkow/mensa"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	date := mensa.Today()
	if c.Date != "" {
		parsed, err := mensa.ParseDate(c.Date)
		if err != nil {
			return err
		}
		date = parsed
	}

	menu, err := deps.Menus.Menu(deps.Ctx, c.Mensa, date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mensa.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(menu, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
