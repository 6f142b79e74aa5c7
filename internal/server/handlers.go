// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/graphdoc"
	"github.com/katalvlaran/pathstep/history"
)

// maxBodyBytes bounds POST /api/reset documents.
const maxBodyBytes = 1 << 20

// APIHandlers serializes HTTP access to one history.Session.
type APIHandlers struct {
	logger  *slog.Logger
	mu      sync.Mutex
	session *history.Session
}

// NewAPIHandlers wraps session. The handlers own it from here on.
func NewAPIHandlers(logger *slog.Logger, session *history.Session) *APIHandlers {
	return &APIHandlers{logger: logger, session: session}
}

// stateResponse is the body of every state-returning endpoint.
type stateResponse struct {
	Phase        string         `json:"phase"`
	Done         bool           `json:"done"`
	Depth        int            `json:"depth"`
	History      string         `json:"history"`
	HistoryBytes int            `json:"historyBytes"`
	Start        string         `json:"start"`
	End          string         `json:"end"`
	Transition   string         `json:"transition,omitempty"`
	Steps        int            `json:"steps,omitempty"`
	Path         []string       `json:"path,omitempty"`
	State        dijkstra.State `json:"state"`
}

// snapshotLocked renders the session; callers hold a.mu.
func (a *APIHandlers) snapshotLocked() stateResponse {
	s := a.session
	st := s.State()
	resp := stateResponse{
		Phase:        s.Phase().String(),
		Done:         s.Done(),
		Depth:        s.Depth(),
		History:      humanize.Bytes(uint64(s.HistoryBytes())),
		HistoryBytes: s.HistoryBytes(),
		Start:        s.Start(),
		End:          s.End(),
		State:        st,
	}
	if path, ok := st.PathTo(s.End()); ok && s.End() != "" {
		resp.Path = path
	}

	return resp
}

func (a *APIHandlers) handleState(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	resp := a.snapshotLocked()
	a.mu.Unlock()

	respondJSON(w, http.StatusOK, resp)
}

func (a *APIHandlers) handleGraph(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	doc := graphdoc.FromGraph(a.session.Graph(), a.session.Start(), a.session.End())
	a.mu.Unlock()

	respondJSON(w, http.StatusOK, doc)
}

func (a *APIHandlers) handleHistory(index string, w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(index)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid index %q", index))
		return
	}

	a.mu.Lock()
	st, err := a.session.Snapshot(i)
	a.mu.Unlock()

	switch {
	case errors.Is(err, history.ErrIndexOutOfRange):
		respondError(w, http.StatusNotFound, err.Error())
	case err != nil:
		a.logger.Error("snapshot decode failed", "index", i, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondJSON(w, http.StatusOK, st)
	}
}

func (a *APIHandlers) handleNext(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	tr, err := a.session.Step()
	if err != nil {
		a.logger.Error("step failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := a.snapshotLocked()
	resp.Transition = tr.String()
	respondJSON(w, http.StatusOK, resp)
}

func (a *APIHandlers) handlePrev(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.session.Prev(); err != nil {
		a.logger.Error("undo failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, a.snapshotLocked())
}

func (a *APIHandlers) handleRun(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n, err := a.session.Run(r.Context(), 0, nil)
	if err != nil {
		a.logger.Error("run failed", "steps", n, "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := a.snapshotLocked()
	resp.Steps = n
	respondJSON(w, http.StatusOK, resp)
}

// handleReset restarts the current scenario, or loads the graph document in
// the request body when one is present.
func (a *APIHandlers) handleReset(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	g, start, end := a.session.Graph(), a.session.Start(), a.session.End()
	if len(bytes.TrimSpace(body)) > 0 {
		doc, err := graphdoc.ParseJSON(body)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if g, err = doc.Graph(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		start, end = doc.Start, doc.End
	}

	if err = a.session.Reset(g, start, end); err != nil {
		a.logger.Error("reset failed", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, a.snapshotLocked())
}
