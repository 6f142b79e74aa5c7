// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pathstep/history"
	"github.com/katalvlaran/pathstep/internal/config"
	"github.com/katalvlaran/pathstep/internal/logging"
	"github.com/katalvlaran/pathstep/internal/server"
)

// serve exposes a session over HTTP until SIGINT/SIGTERM.
func serve(cfg config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", cfg.HTTP.Addr, "listen address")
	graphPath := fs.String("graph", cfg.Player.Graph, "graph document (.json or .toml)")
	topology := fs.String("topology", "", topologyUsage)
	costs := fs.String("costs", "", "comma-separated edge costs cycled over a generated topology")
	start := fs.String("start", cfg.Player.Start, "start vertex")
	end := fs.String("end", cfg.Player.End, "end vertex")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.HTTP.Addr = *addr

	logger, closer := logging.New(cfg.Logging)
	defer closer.Close()

	sc, err := loadScenario(scenarioSource{path: *graphPath, topology: *topology, costs: *costs}, *start, *end)
	if err != nil {
		return err
	}
	session, err := history.NewSession(sc.graph, sc.start, sc.end, history.WithLogger(logger))
	if err != nil {
		return err
	}

	router := server.NewRouter(logger, server.RouterDependencies{
		API:            server.NewAPIHandlers(logger, session),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})
	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped unexpectedly", "error", err)
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
