// Package cli is a line oriented front end for trying corrections by hand.
//
// Each line is checked as a new word. A line starting with "+" appends to
// the word being built, and one starting with "?" lists completions.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/speller"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
)

// InputHandler reads words from a reader and prints what the speller makes of them.
type InputHandler struct {
	checker       speller.Checker
	session       *speller.Session
	maxLength     int
	completeLimit int
	noFilter      bool
	requestCount  int
	reader        io.Reader
	w             io.Writer
	out           *log.Logger
}

// NewInputHandler creates a handler reading stdin and printing to stdout.
func NewInputHandler(checker speller.Checker, maxLength, limit int, noFilter bool) *InputHandler {
	h := &InputHandler{
		checker:       checker,
		session:       speller.NewSession(checker),
		maxLength:     maxLength,
		completeLimit: limit,
		noFilter:      noFilter,
	}
	h.SetIO(os.Stdin, os.Stdout)
	return h
}

// SetIO swaps the input and output streams.
func (h *InputHandler) SetIO(r io.Reader, w io.Writer) {
	h.reader = r
	h.w = w
	h.out = log.NewWithOptions(w, log.Options{Level: log.GetLevel()})
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("WordCheck CLI")
	h.out.Print("type a word and press Enter, +letters to extend it, ?prefix to complete (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.reader)
	for {
		fmt.Fprint(h.w, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// Requests returns how many non blank lines were handled.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	switch {
	case strings.HasPrefix(line, "+"):
		text := strings.TrimSpace(line[1:])
		if h.session.Word() == "" {
			h.out.Warn("Nothing to extend yet, type a word first")
			return
		}
		if !h.accept(h.session.Word() + text) {
			return
		}
		start := time.Now()
		result := h.session.Append(text)
		h.report(result, time.Since(start))
	case strings.HasPrefix(line, "?"):
		h.complete(strings.TrimSpace(line[1:]))
	default:
		if !h.accept(line) {
			return
		}
		start := time.Now()
		result := h.session.Start(line)
		h.report(result, time.Since(start))
	}
}

// accept applies the length bound and, unless disabled, the input filter.
func (h *InputHandler) accept(word string) bool {
	if h.maxLength > 0 && len(word) > h.maxLength {
		h.out.Errorf("Word too long: %s", word)
		return false
	}
	if !h.noFilter && !utils.IsValidInput(word) {
		h.out.Infof("Skipping input: '%s'", word)
		return false
	}
	return true
}

func (h *InputHandler) report(r speller.Result, took time.Duration) {
	log.Debugf("Took [ %v ] and %d steps for '%s'", took, r.Steps, r.Input)
	if r.Truncated {
		h.out.Warnf("Search for '%s' hit the step limit", r.Input)
	}
	switch {
	case !r.Found:
		h.out.Printf("%s: %s", r.Input, missStyle.Render("NO SUGGESTION"))
	case r.Corrected:
		h.out.Printf("%s -> %s", r.Input, correctStyle.Render(utils.MatchCase(r.Input, r.Word)))
	default:
		h.out.Printf("%s: %s", r.Input, wordStyle.Render("ok"))
	}
}

func (h *InputHandler) complete(prefix string) {
	if prefix == "" {
		h.out.Warn("Missing prefix after '?'")
		return
	}
	words := h.checker.Complete(prefix, h.completeLimit)
	if len(words) == 0 {
		h.out.Warnf("No completions for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("Found %d completions for '%s':", len(words), prefix)
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(w))
	}
}
