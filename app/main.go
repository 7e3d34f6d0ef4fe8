package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ualireza82-tech/newswire/app/api"
	"github.com/ualireza82-tech/newswire/app/broadcast"
	"github.com/ualireza82-tech/newswire/app/cfg"
	"github.com/ualireza82-tech/newswire/app/dedup"
	"github.com/ualireza82-tech/newswire/app/feed"
	"github.com/ualireza82-tech/newswire/app/publisher"
	"github.com/ualireza82-tech/newswire/app/scheduler"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Newswire server", "version", appCfg.Version)

	sources, err := feed.LoadSources(appCfg.SourcesFile)
	if err != nil {
		slog.Error("Failed to load feed sources", "error", err)
		os.Exit(1)
	}
	slog.Info("Feed sources loaded", "count", len(sources))

	directory, err := publisher.LoadDirectory(appCfg.PublishersFile)
	if err != nil {
		slog.Error("Failed to load publisher directory", "error", err)
		os.Exit(1)
	}
	slog.Info("Publisher directory loaded", "count", directory.Len())

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.FetchTimeout) * time.Second,
	}
	fetcher := feed.NewFetcher(httpClient, appCfg.UserAgent)
	normalizer := feed.NewNormalizer()
	seen := dedup.NewCache(appCfg.DedupMax, appCfg.DedupRetain)
	hub := broadcast.NewHub()

	feedScheduler := scheduler.NewScheduler(fetcher, normalizer, seen, directory, hub, sources)
	feedScheduler.Start()
	defer feedScheduler.Stop()

	handler := api.NewHandler(feedScheduler, hub)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hub.Close()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer; in-flight fetches settle on their
	// own timeout.
	slog.Info("Shutdown complete")
}
