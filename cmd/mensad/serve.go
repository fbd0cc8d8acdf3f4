package main

import (
	"net/http"
	"os"
	"os/signal"

	mensahttp "github.com/pwalkow/mensa/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []mensahttp.ServerOption{mensahttp.WithLogger(deps.Logger)}
	if deps.Store != nil {
		opts = append(opts, mensahttp.WithStore(deps.Store))
	}

	srv := &http.Server{
		Handler: mensahttp.NewServer(deps.Menus, opts...),
		Addr:    c.Addr,
	}

	deps.Logger.Info("serving menu API", "addr", c.Addr, "history", deps.Store != nil)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	select {
	case <-sigCh:
		return srv.Close()
	case err := <-errCh:
		return err
	}
}
