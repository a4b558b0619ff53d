// Package cli handles the interactive read-print loop: one Nepali word in,
// one (root, suffix) pair out.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/bleyesh/Nepali-Stemmer/internal/logger"
	"github.com/bleyesh/Nepali-Stemmer/internal/utils"
	"github.com/bleyesh/Nepali-Stemmer/pkg/corpus"
	"github.com/bleyesh/Nepali-Stemmer/pkg/stemmer"
)

// InputHandler reads words from stdin and prints their stemming result.
// showDetail adds suffix length and root ratio to each answer; noFilter
// disables the Devanagari-only input check.
type InputHandler struct {
	stemmer    *stemmer.Stemmer
	log        *log.Logger
	showDetail bool
	noFilter   bool
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(s *stemmer.Stemmer, showDetail, noFilter bool) *InputHandler {
	return &InputHandler{
		stemmer:    s,
		log:        logger.New("nepstem"),
		showDetail: showDetail,
		noFilter:   noFilter,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes the
// normalized word to handleInput. Typing quit, exit or q leaves the loop;
// the loop also terminates if reading from stdin fails.
func (h *InputHandler) Start() error {
	h.log.Print("Nepali stemmer CLI")
	h.log.Print("enter a word and press Enter to see root and suffix (quit to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word := corpus.Normalize(line)
		if word == "" {
			continue
		}
		switch strings.ToLower(word) {
		case "quit", "exit", "q":
			h.log.Print("Exiting...")
			return nil
		}
		h.handleInput(word)
	}
}

// handleInput stems a single word and prints the result. A word the engine
// rejects is reported and skipped; the loop keeps running.
func (h *InputHandler) handleInput(word string) {
	if !h.noFilter && !utils.IsValidWord(word) {
		h.log.Warnf("not a Devanagari word: %q (use -no-filter to stem anyway)", word)
		return
	}

	start := time.Now()
	result, err := h.stemmer.Stem(word)
	elapsed := time.Since(start)
	if err != nil {
		h.log.Errorf("cannot stem %q: %v", word, err)
		return
	}

	h.log.Debugf("Took [ %v ] for %q", elapsed, word)

	suffix := result.Suffix
	if suffix == "" {
		suffix = "(none)"
	}
	clRoot := fmt.Sprintf("\033[38;5;75m%s\033[0m", result.Root)
	h.log.Printf("root:   %s", clRoot)
	h.log.Printf("suffix: %s", suffix)

	if h.showDetail {
		wordLen := utf8.RuneCountInString(word)
		rootLen := utf8.RuneCountInString(result.Root)
		h.log.Printf("stripped %d of %d chars (root ratio %.1f%%)",
			wordLen-rootLen, wordLen, float64(rootLen)/float64(wordLen)*100)
	}
}
