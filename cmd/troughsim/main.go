// Package main runs a demo feeding host: an in-memory world stocked with the
// embedded defaults, the reconciliation engine persisting to a YAML file, and
// a websocket replication endpoint serving full snapshots at /sync.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pthm-cable/trough/config"
	"github.com/pthm-cable/trough/feed"
	"github.com/pthm-cable/trough/netsync"
	"github.com/pthm-cable/trough/telemetry"
	"github.com/pthm-cable/trough/world"
)

func main() {
	configPath := flag.String("config", "trough.yaml", "Feeding configuration file")
	listen := flag.String("listen", ":8732", "Replication listen address (empty = disabled)")
	outputDir := flag.String("output", "", "Telemetry output directory (empty = disabled)")
	persistEvery := flag.Duration("persist-every", 5*time.Minute, "Interval between steady-state persists")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	w := world.New()
	w.Seed(config.Default())

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		logger.Error("could not set up telemetry output", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	collector := telemetry.NewCollector(out, logger)

	engine := feed.NewEngine(*configPath, w, logger)
	engine.SetRecorder(collector)

	var srv *http.Server
	if *listen != "" {
		hub := netsync.NewHub(logger)
		engine.SetPublisher(hub)
		mux := http.NewServeMux()
		mux.Handle("/sync", hub)
		srv = &http.Server{Addr: *listen, Handler: mux}
		go func() {
			logger.Info("replication endpoint listening", "addr", *listen)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("replication server failed", "error", err)
			}
		}()
	}

	if err := engine.SessionLoaded(); err != nil {
		logger.Warn("session load finished with persistence errors", "error", err)
	}

	ticker := time.NewTicker(*persistEvery)
	defer ticker.Stop()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if err := engine.SessionPersist(); err != nil {
				logger.Warn("periodic persist failed", "error", err)
			}
		case <-sig:
			logger.Info("shutting down")
			if err := engine.SessionPersist(); err != nil {
				logger.Warn("final persist failed", "error", err)
			}
			if srv != nil {
				srv.Close()
			}
			logger.Info("session summary", "cycles", len(collector.Cycles()),
				"mean_applied", collector.MeanApplied())
			return
		}
	}
}
