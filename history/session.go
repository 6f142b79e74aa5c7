// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session = step engine + snapshot log (initialize / next / prev / reset / run).

package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-step debug records.
// Default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEngineOptions passes opts to every engine the Session builds,
// including the ones built by Reset.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// Step describes one forward micro-step observed by Run.
type Step struct {
	Index      int                 // 1-based position in history (== Depth after the step)
	Transition dijkstra.Transition // micro-step performed
	State      dijkstra.State      // snapshot after the step
	Done       bool                // search terminated
}

// Session owns one engine and its undo history.
type Session struct {
	engine     *dijkstra.Engine
	log        *Log
	logger     *slog.Logger
	engineOpts []dijkstra.Option
}

// NewSession initializes a search over (g, start, end) and archives the
// initial snapshot as the bottom of history.
//
// Errors:
//   - wrapped encoding errors from the Log (only for non-encodable costs such as NaN).
func NewSession(g *core.Graph, start, end string, opts ...Option) (*Session, error) {
	s := &Session{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reset(g, start, end); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset discards the current engine and all history and starts over for the
// new triple. Reset itself is not undoable.
func (s *Session) Reset(g *core.Graph, start, end string) error {
	engine := dijkstra.NewEngine(g, start, end, s.engineOpts...)
	log := NewLog()
	if err := log.Push(engine.State()); err != nil {
		return fmt.Errorf("history: reset: %w", err)
	}
	s.engine, s.log = engine, log

	s.logger.Debug("session reset",
		"start", start,
		"end", end,
		"vertices", engine.Graph().VertexCount(),
		"edges", engine.Graph().EdgeCount(),
	)

	return nil
}

// Next advances one micro-step and reports whether the search is terminated.
// After termination it is a no-op returning true and nothing is archived.
func (s *Session) Next() (bool, error) {
	if _, err := s.Step(); err != nil {
		return false, err
	}

	return s.engine.Done(), nil
}

// Step advances one micro-step, archives the resulting snapshot and returns
// the transition taken. TransitionNone is returned (and nothing archived)
// once the search is terminated.
//
// If the snapshot cannot be archived the engine is rolled back to the newest
// archived state, so engine and history never disagree.
func (s *Session) Step() (dijkstra.Transition, error) {
	tr := s.engine.Step()
	if tr == dijkstra.TransitionNone {
		return tr, nil
	}

	if err := s.log.Push(s.engine.State()); err != nil {
		if prev, perr := s.log.Peek(); perr == nil {
			s.engine.Restore(prev)
		}
		return dijkstra.TransitionNone, fmt.Errorf("history: step: %w", err)
	}

	s.logger.Debug("step",
		"transition", tr.String(),
		"phase", s.engine.Phase().String(),
		"depth", s.Depth(),
		"history", humanize.Bytes(uint64(s.log.Bytes())),
	)

	return tr, nil
}

// Prev restores the snapshot preceding the newest one. It is a no-op when
// only the initial snapshot is left. The preceding entry is decoded before
// anything is dropped, so a corrupt entry leaves engine and history unchanged.
func (s *Session) Prev() error {
	n := s.log.Len()
	if n <= 1 {
		return nil
	}
	prev, err := s.log.At(n - 2)
	if err != nil {
		return fmt.Errorf("history: prev: %w", err)
	}
	if err = s.log.Pop(); err != nil {
		return fmt.Errorf("history: prev: %w", err)
	}
	s.engine.Restore(prev)

	s.logger.Debug("undo", "depth", s.Depth(), "phase", s.engine.Phase().String())

	return nil
}

// Rewind undoes every step back to the initial snapshot.
func (s *Session) Rewind() error {
	for s.Depth() > 0 {
		if err := s.Prev(); err != nil {
			return err
		}
	}

	return nil
}

// Run steps the session to completion, waiting delay between steps and
// calling observe (if non-nil) after each one. It returns the number of
// steps taken. Cancelling ctx stops the loop between two steps and returns
// ctx.Err(); the session stays valid and may be resumed.
func (s *Session) Run(ctx context.Context, delay time.Duration, observe func(Step)) (int, error) {
	n := 0
	for !s.engine.Done() {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		tr, err := s.Step()
		if err != nil {
			return n, err
		}
		n++
		if observe != nil {
			observe(Step{
				Index:      s.Depth(),
				Transition: tr,
				State:      s.engine.State(),
				Done:       s.engine.Done(),
			})
		}

		if delay <= 0 || s.engine.Done() {
			continue
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return n, ctx.Err()
		case <-t.C:
		}
	}

	return n, nil
}

// Snapshot decodes archived snapshot i (0 is the initial snapshot).
func (s *Session) Snapshot(i int) (dijkstra.State, error) {
	return s.log.At(i)
}

// State returns a deep copy of the current snapshot.
func (s *Session) State() dijkstra.State { return s.engine.State() }

// Done reports whether the search has terminated.
func (s *Session) Done() bool { return s.engine.Done() }

// Phase returns the live phase.
func (s *Session) Phase() dijkstra.Phase { return s.engine.Phase() }

// Depth returns how many steps can be undone.
func (s *Session) Depth() int { return s.log.Len() - 1 }

// HistoryBytes returns the compressed size of all archived snapshots.
func (s *Session) HistoryBytes() int { return s.log.Bytes() }

// Start returns the source vertex ID.
func (s *Session) Start() string { return s.engine.Start() }

// End returns the target vertex ID.
func (s *Session) End() string { return s.engine.End() }

// Graph returns the graph of the current run.
func (s *Session) Graph() *core.Graph { return s.engine.Graph() }
