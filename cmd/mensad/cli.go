package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pwalkow/mensa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Menus  mensa.MenuService
	Store  mensa.MenuStore // nil unless a database is configured
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint string `env:"MENSA_ENDPOINT" help:"Menu page endpoint override"`
	DB       string `env:"MENSA_DB" help:"SQLite database path; enables menu history"`

	Serve   ServeCmd   `cmd:"" help:"Run the menu HTTP server"`
	Show    ShowCmd    `cmd:"" help:"Fetch one day's menu and print it as JSON"`
	Week    WeekCmd    `cmd:"" help:"Fetch Monday through Friday of a week as JSON"`
	History HistoryCmd `cmd:"" help:"List recorded menus (requires --db)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":3050" help:"Listen address"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Date  string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today"`
	Mensa string `default:"322" help:"Venue identifier (resources_id)"`
}

// WeekCmd is the "week" subcommand.
type WeekCmd struct {
	Date  string `arg:"" optional:"" help:"Any date inside the week, defaults to today"`
	Mensa string `default:"322" help:"Venue identifier (resources_id)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Mensa string `help:"Filter by venue identifier"`
	Limit int    `default:"20" help:"Maximum number of records"`
}
