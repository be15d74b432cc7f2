// Package http exposes a token project over a JSON API: resolution,
// the flattened token list, the raw tree, contrast checks and
// Prometheus metrics.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weftlabs/weft"
	"github.com/weftlabs/weft/internal/logging"
	"github.com/weftlabs/weft/pkg/contrast"
	"github.com/weftlabs/weft/pkg/tokens"
)

// Resolver defines the token project surface the HTTP adapter needs.
type Resolver interface {
	Resolve(ref string) (string, error)
	Tree() tokens.Tree
	Flatten() ([]tokens.FlatToken, error)
}

// Server serves a token project over HTTP.
type Server struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler for a token project.
func NewHandler(resolver Resolver, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{resolver: resolver, logger: logger}

	r := chi.NewRouter()
	r.Use(metricsMiddleware)
	r.Get("/healthz", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/resolve", s.getResolve)
	r.Get("/tokens", s.getTokens)
	r.Get("/tokens/tree", s.getTree)
	r.Get("/contrast", s.getContrast)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "weft-http",
		"version": strings.TrimSpace(weft.Version),
	})
}

// getResolve handles GET /resolve?ref={dot.path}.
func (s *Server) getResolve(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter 'ref' is required"})
		return
	}

	value, err := s.resolver.Resolve(ref)
	if err != nil {
		s.writeResolveError(w, ref, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"ref": ref, "value": value})
}

// getTokens handles GET /tokens: the flattened, fully resolved list.
func (s *Server) getTokens(w http.ResponseWriter, r *http.Request) {
	flat, err := s.resolver.Flatten()
	if err != nil {
		s.logger.Error("flatten failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	prefix := r.URL.Query().Get("prefix")
	if prefix != "" {
		filtered := flat[:0]
		for _, tok := range flat {
			if strings.HasPrefix(tok.Path, prefix) {
				filtered = append(filtered, tok)
			}
		}
		flat = filtered
	}

	writeJSON(w, http.StatusOK, flat)
}

// getTree handles GET /tokens/tree: the raw tree, references intact.
func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.resolver.Tree())
}

// getContrast handles GET /contrast?fg=&bg=. Both parameters accept
// either a literal colour or a token reference.
func (s *Server) getContrast(w http.ResponseWriter, r *http.Request) {
	fg := r.URL.Query().Get("fg")
	bg := r.URL.Query().Get("bg")
	if fg == "" || bg == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameters 'fg' and 'bg' are required"})
		return
	}

	fgValue, err := s.resolver.Resolve(fg)
	if err != nil {
		s.writeResolveError(w, fg, err)
		return
	}
	bgValue, err := s.resolver.Resolve(bg)
	if err != nil {
		s.writeResolveError(w, bg, err)
		return
	}

	ratio, err := contrast.Ratio(fgValue, bgValue)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"fg":    fgValue,
		"bg":    bgValue,
		"ratio": ratio,
		"grade": contrast.Grade(ratio),
	})
}

// writeResolveError maps the resolver's error taxonomy onto HTTP
// status codes: bad input 400, unknown path 404, cycles 422.
func (s *Server) writeResolveError(w http.ResponseWriter, ref string, err error) {
	var (
		argErr  *tokens.InvalidArgumentError
		pathErr *tokens.PathNotFoundError
		circErr *tokens.CircularReferenceError
	)

	switch {
	case errors.As(err, &pathErr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: "path_not_found"})
	case errors.As(err, &circErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: "circular_reference"})
	case errors.As(err, &argErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "invalid_argument"})
	default:
		s.logger.Error("resolve failed", "ref", ref, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
