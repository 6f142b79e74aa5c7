// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/history"
	"github.com/katalvlaran/pathstep/internal/config"
	"github.com/katalvlaran/pathstep/internal/logging"
)

// play runs a session to termination, printing one line per micro-step.
func play(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(stderr)
	graphPath := fs.String("graph", cfg.Player.Graph, "graph document (.json or .toml)")
	topology := fs.String("topology", "", topologyUsage)
	costs := fs.String("costs", "", "comma-separated edge costs cycled over a generated topology")
	start := fs.String("start", cfg.Player.Start, "start vertex")
	end := fs.String("end", cfg.Player.End, "end vertex")
	delay := fs.Duration("delay", cfg.Player.Delay.Duration, "pause between steps")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, err := loadScenario(scenarioSource{path: *graphPath, topology: *topology, costs: *costs}, *start, *end)
	if err != nil {
		return err
	}

	// Step lines own stdout; logs go to stderr unless a file is configured.
	logger, closer := logging.New(cfg.Logging)
	if cfg.Logging.File == "" {
		logger = logging.NewWithWriter(stderr, cfg.Logging)
	}
	defer closer.Close()

	s, err := history.NewSession(sc.graph, sc.start, sc.end, history.WithLogger(logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s: %d vertices, %d edges, %s → %s\n",
		sc.source, sc.graph.VertexCount(), sc.graph.EdgeCount(), sc.start, sc.end)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := s.Run(ctx, *delay, func(st history.Step) {
		fmt.Fprintln(stdout, renderStep(st))
	})
	if err != nil {
		return fmt.Errorf("after %d steps: %w", n, err)
	}

	fmt.Fprintln(stdout, renderSummary(s))

	return nil
}

// renderStep formats one observed micro-step.
func renderStep(st history.Step) string {
	current := st.State.CurrentVertex
	if current == "" {
		current = "-"
	}
	if st.State.CurrentEdge != nil {
		current += " via " + st.State.CurrentEdge.String()
	}

	return fmt.Sprintf("%3d %-9s %-15s %-14s %s",
		st.Index, st.Transition, st.State.Phase(), current, renderDistances(st.State))
}

// renderDistances lists distances in vertex order, ∞ for unreachable.
func renderDistances(s dijkstra.State) string {
	keys := maps.Keys(s.Distances)
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, v := range keys {
		d := s.Distances[v]
		if math.IsInf(d, 1) {
			parts[i] = v + "=∞"
			continue
		}
		parts[i] = v + "=" + strconv.FormatFloat(d, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}

// renderSummary reports the outcome for the end vertex and the history size.
func renderSummary(s *history.Session) string {
	st := s.State()
	var b strings.Builder
	if path, ok := st.PathTo(s.End()); ok && s.End() != "" {
		fmt.Fprintf(&b, "path: %s (cost %g)\n", strings.Join(path, " → "), st.Distance(s.End()))
	} else {
		fmt.Fprintf(&b, "no path from %q to %q\n", s.Start(), s.End())
	}
	fmt.Fprintf(&b, "history: %d steps, %s", s.Depth(), humanize.Bytes(uint64(s.HistoryBytes())))

	return b.String()
}
