// Package http exposes the record-tracking core over a JSON API. The
// calculator form, the record editor, and the export flow each map to a
// small set of endpoints.
package http

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ore/internal/clipboard"
	"ore/internal/core"
	"ore/internal/editor"
	"ore/internal/log"
	"ore/internal/services"
	"ore/internal/store"
)

type Server struct {
	http.Server
	store   *store.Store
	editor  *editor.Editor
	exports *services.ExportService
	clip    clipboard.Clipboard

	// The calculator form and the editor are process-wide single-user
	// state. The mutex serializes access to them.
	mu   sync.Mutex
	calc core.CalcForm
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, st *store.Store, ed *editor.Editor, ex *services.ExportService, clip clipboard.Clipboard) *Server {
	s := &Server{
		store:   st,
		editor:  ed,
		exports: ex,
		clip:    clip,
		calc:    core.NewCalcForm(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/calculate", s.withSecurityHeaders(s.handleCalculate))
	mux.HandleFunc("/calculate/reset", s.withSecurityHeaders(s.handleCalculateReset))
	mux.HandleFunc("/calculate/copy", s.withSecurityHeaders(s.handleCalculateCopy))
	mux.HandleFunc("/calculate/records", s.withSecurityHeaders(s.handleCalculateAddRecord))
	mux.HandleFunc("/records", s.withSecurityHeaders(s.handleRecords))
	mux.HandleFunc("/records/wage", s.withSecurityHeaders(s.handleCreateWage))
	mux.HandleFunc("/records/wage/", s.withSecurityHeaders(s.handleUpdateWage))
	mux.HandleFunc("/records/manual", s.withSecurityHeaders(s.handleCreateManual))
	mux.HandleFunc("/records/manual/", s.withSecurityHeaders(s.handleUpdateManual))
	mux.HandleFunc("/export", s.withSecurityHeaders(s.handleExport))

	s.Addr = addr
	s.Handler = mux
	return s
}

// withSecurityHeaders sets baseline response headers and logs the request.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")

		start := time.Now()
		requestID := generateRequestID()
		next(w, r)
		slog.InfoContext(r.Context(), "Request handled",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldDuration, time.Since(start).Milliseconds())
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
