// Command mazed serves generated mazes over HTTP.
//
// Configuration comes from the MAZES_* environment, optionally loaded from
// a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/mazes/config"
	"github.com/katalvlaran/mazes/server"
)

const shutdownTimeout = 10 * time.Second

func run() int {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	cfg, err := config.Load()
	if err != nil {
		logger.Printf("[APP] [FATAL] %v", err)
		return 1
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Printf("[APP] [INFO] listening on %s", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		logger.Printf("[APP] [FATAL] %v", err)
		return 1
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("[APP] [ERROR] shutdown: %v", err)
		return 1
	}
	logger.Printf("[APP] [INFO] stopped")

	return 0
}

func main() {
	os.Exit(run())
}
