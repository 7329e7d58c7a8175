/*
Package server implements the HTTP front-end for the dice engine: a small
gorilla/mux router exposing roll-by-notation endpoints over
github.com/travis-g/diceroll.
*/
package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"
)

var (
	ShutdownGraceDuration = time.Second * 5

	// Logger is the package-level structured logger. Run reconfigures its
	// level per the -debug flag passed in from the CLI.
	Logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
)

// Run starts the HTTP server listening on addr and blocks until SIGINT is
// received, at which point it drains in-flight requests for
// ShutdownGraceDuration before returning.
func Run(addr string, debug bool) (int, error) {
	if debug {
		Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	r := ConfigureRouting(debug)

	srv := &http.Server{
		Handler:      r,
		Addr:         addr,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Logger.Error("server fatal error", "err", err)
		}
	}()
	Logger.Info("server started", "address", srv.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	Logger.Info("signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownGraceDuration)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return 1, err
	}
	return 0, nil
}
