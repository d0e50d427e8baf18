package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// HTTPServer serves checks and completions as JSON.
type HTTPServer struct {
	checker speller.Checker
	limits  config.ServerConfig
	server  *http.Server
	logger  *log.Logger
}

// NewHTTPServer creates a server listening on addr once Start is called.
func NewHTTPServer(checker speller.Checker, limits config.ServerConfig, addr string) *HTTPServer {
	h := &HTTPServer{
		checker: checker,
		limits:  limits,
		logger:  logger.New("http"),
	}

	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/check/{word}", h.handleCheck).Methods(http.MethodGet)
	r.HandleFunc("/complete/{prefix}", h.handleComplete).Methods(http.MethodGet)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found", Code: http.StatusNotFound})
	})

	h.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h
}

// Handler returns the router, for tests and embedding.
func (h *HTTPServer) Handler() http.Handler {
	return h.server.Handler
}

// Start blocks until the server is shut down.
func (h *HTTPServer) Start() error {
	h.logger.Infof("Listening on %s", h.server.Addr)
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server on %s: %w", h.server.Addr, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (h *HTTPServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

func (h *HTTPServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (h *HTTPServer) handleCheck(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if rerr := validateWord(word, 1, h.limits); rerr != nil {
		writeJSON(w, rerr.code, ErrorResponse{Error: rerr.msg, Code: rerr.code})
		return
	}

	start := time.Now()
	result := h.checker.Check(word)
	writeJSON(w, http.StatusOK, CheckResponse{
		Word:       word,
		Suggestion: result.Word,
		Found:      result.Found,
		Corrected:  result.Corrected,
		Truncated:  result.Truncated,
		TimeTaken:  time.Since(start).Microseconds(),
	})
}

func (h *HTTPServer) handleComplete(w http.ResponseWriter, r *http.Request) {
	prefix := mux.Vars(r)["prefix"]
	if rerr := validateWord(prefix, h.limits.MinPrefix, h.limits); rerr != nil {
		writeJSON(w, rerr.code, ErrorResponse{Error: rerr.msg, Code: rerr.code})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid limit", Code: http.StatusBadRequest})
			return
		}
		limit = n
	}

	start := time.Now()
	suggestions := h.checker.Complete(prefix, clampLimit(limit, h.limits))
	writeJSON(w, http.StatusOK, CompleteResponse{
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (h *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok", Words: h.checker.Stats()["totalWords"]})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}
