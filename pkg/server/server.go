package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultLimit = 10

// requestError is a rejected request, coded like its HTTP counterpart.
type requestError struct {
	msg  string
	code int
}

func (e *requestError) Error() string { return e.msg }

// validateWord applies the length limits shared by both surfaces.
func validateWord(word string, minLen int, limits config.ServerConfig) *requestError {
	if word == "" {
		return &requestError{"missing word", 400}
	}
	if len(word) < minLen {
		return &requestError{fmt.Sprintf("word must be at least %d characters", minLen), 400}
	}
	if len(word) > limits.MaxQueryLen {
		return &requestError{fmt.Sprintf("word exceeds maximum length of %d characters", limits.MaxQueryLen), 413}
	}
	return nil
}

// clampLimit picks the completion count: a default when unset, never above MaxLimit.
func clampLimit(limit int, limits config.ServerConfig) int {
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > limits.MaxLimit {
		limit = limits.MaxLimit
	}
	return limit
}

// Server handles msgpack IPC for a speller
type Server struct {
	checker  speller.Checker
	limits   config.ServerConfig
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	requests int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(checker speller.Checker, limits config.ServerConfig) *Server {
	return NewServerWithIO(checker, limits, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams.
func NewServerWithIO(checker speller.Checker, limits config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		checker: checker,
		limits:  limits,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Debugf("Malformed request: %v", err)
			if err := s.sendError("", "invalid msgpack request", 400); err != nil {
				return err
			}
			continue
		}
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

// Requests returns how many requests have been read so far.
func (s *Server) Requests() int {
	return s.requests
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case "", ActionCheck:
		return s.handleCheck(req)
	case ActionComplete:
		return s.handleComplete(req)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.checker.Stats()["totalWords"]})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

func (s *Server) handleCheck(req Request) error {
	if rerr := validateWord(req.Word, 1, s.limits); rerr != nil {
		log.Debugf("Rejected check %q: %s", req.ID, rerr.msg)
		return s.sendError(req.ID, rerr.msg, rerr.code)
	}

	start := time.Now()
	result := s.checker.Check(req.Word)
	elapsed := time.Since(start)

	return s.send(CheckResponse{
		ID:         req.ID,
		Word:       req.Word,
		Suggestion: result.Word,
		Found:      result.Found,
		Corrected:  result.Corrected,
		Truncated:  result.Truncated,
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) error {
	if rerr := validateWord(req.Word, s.limits.MinPrefix, s.limits); rerr != nil {
		log.Debugf("Rejected completion %q: %s", req.ID, rerr.msg)
		return s.sendError(req.ID, rerr.msg, rerr.code)
	}

	start := time.Now()
	suggestions := s.checker.Complete(req.Word, clampLimit(req.Limit, s.limits))
	elapsed := time.Since(start)

	return s.send(CompleteResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Writing response: %v", err)
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
