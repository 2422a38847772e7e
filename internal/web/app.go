// Package web serves the contrast engine as a small JSON API.
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/phyten/hsbcontrast/internal/engine"
	engineopts "github.com/phyten/hsbcontrast/internal/engine/opts"
)

// Server holds the resolved defaults every request starts from.
type Server struct {
	base     engine.Options
	logger   *zap.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
}

// New builds a Server with its own metrics registry. base carries the
// configured min ratio, strategy, clamp and palette.
func New(base engine.Options, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	if err := m.Register(reg); err != nil {
		return nil, err
	}
	return &Server{base: base, logger: logger, metrics: m, gatherer: reg}, nil
}

// Register attaches the API endpoints to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/contrast", getOnly(s.contrastHandler))
	mux.HandleFunc("/api/demo", getOnly(s.demoHandler))
	mux.HandleFunc("/healthz", getOnly(healthHandler))
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}

// Handler returns the full middleware chain around a fresh mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return requestID(securityHeaders(s.logRequests(mux)))
}

func (s *Server) contrastHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := engineopts.ApplyWebQueryToOptions(s.base, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := engine.Run(opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.metrics.ObserveItems("contrast", res.Items)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) demoHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := engineopts.ApplyWebQueryToOptions(s.base, r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := engine.Demo(opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.metrics.ObserveItems("demo", res.Items)
	writeJSON(w, http.StatusOK, res)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
			return
		}
		h(w, r)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
