/*
Package catalogue holds the fixed set of known Nepali suffixes and exposes them
in the order the stripping engine must try them.

A catalogue is built once from a list of suffix strings, validated, and never
mutated afterwards, so it is safe for concurrent readers. Candidates are ordered
by descending rune length; entries of equal length keep their declaration order.
Longer suffixes must be tried first because short Nepali suffixes are often
substrings of longer stacked ones (को is the tail of हरूको).

Besides the sorted candidate list, the catalogue indexes every suffix in a
Patricia trie keyed by the suffix's reversed rune sequence. Walking the reversed
word through that trie enumerates exactly the suffixes matching the word's
ending, which keeps per-word matching cost independent of catalogue size.
*/
package catalogue

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

//go:embed suffixes.txt
var defaultRaw string

// Error reports a malformed suffix source. A catalogue is either fully
// valid or not built at all; there is no partially loaded state.
type Error struct {
	Line   int    // 1-based position in the source list
	Entry  string // offending entry, "" for empty entries
	Reason string
}

func (e *Error) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("catalogue: entry %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("catalogue: entry %d (%q): %s", e.Line, e.Entry, e.Reason)
}

// Catalogue is an immutable, ordered collection of suffix strings.
type Catalogue struct {
	candidates []string       // descending rune length, declaration order on ties
	index      *patricia.Trie // reversed suffix runes -> candidate position
}

// Load builds a catalogue from the given suffix strings. The slice order is the
// declaration order used for tie-breaking. Duplicate and empty entries are
// rejected: a malformed source must fail at startup, never mid-run.
func Load(entries []string) (*Catalogue, error) {
	if len(entries) == 0 {
		return nil, &Error{Line: 0, Reason: "no suffix entries"}
	}

	seen := make(map[string]int, len(entries))
	candidates := make([]string, len(entries))
	for i, entry := range entries {
		if entry == "" {
			return nil, &Error{Line: i + 1, Reason: "empty suffix"}
		}
		if prev, dup := seen[entry]; dup {
			return nil, &Error{Line: i + 1, Entry: entry,
				Reason: fmt.Sprintf("duplicate of entry %d", prev+1)}
		}
		seen[entry] = i
		candidates[i] = entry
	}

	// Stable sort keeps declaration order among equal-length suffixes.
	sort.SliceStable(candidates, func(i, j int) bool {
		return utf8.RuneCountInString(candidates[i]) > utf8.RuneCountInString(candidates[j])
	})

	index := patricia.NewTrie()
	for pos, s := range candidates {
		index.Insert(patricia.Prefix(reverseRunes(s)), pos)
	}

	log.Debugf("catalogue loaded: %d suffixes", len(candidates))
	return &Catalogue{candidates: candidates, index: index}, nil
}

// LoadFile builds a catalogue from a suffix file: one suffix per line,
// '#' starts a comment, blank lines are skipped.
func LoadFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suffix file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read suffix file: %w", err)
	}
	return Load(entries)
}

var defaultCatalogue *Catalogue

func init() {
	var entries []string
	for _, line := range strings.Split(defaultRaw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	c, err := Load(entries)
	if err != nil {
		panic(fmt.Sprintf("embedded suffix data is invalid: %v", err))
	}
	defaultCatalogue = c
}

// Default returns the catalogue built from the embedded Nepali suffix file.
func Default() *Catalogue {
	return defaultCatalogue
}

// Len returns the number of suffixes in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.candidates)
}

// Candidates returns all suffixes sorted by descending rune length, equal
// lengths in declaration order. The returned slice is a copy.
func (c *Catalogue) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// MatchesEnding returns the catalogue suffixes the word ends with, longest
// first. Matching is exact on the code-point sequence as given.
func (c *Catalogue) MatchesEnding(word string) []string {
	if word == "" {
		return nil
	}

	var matches []string
	err := c.index.VisitPrefixes(patricia.Prefix(reverseRunes(word)), func(p patricia.Prefix, item patricia.Item) error {
		matches = append(matches, c.candidates[item.(int)])
		return nil
	})
	if err != nil {
		log.Errorf("catalogue index walk failed for %q: %v", word, err)
		return nil
	}

	// VisitPrefixes yields shortest first; the engine wants longest first.
	// Two distinct suffixes of equal length cannot both match one ending,
	// so reversing is a full length ordering here.
	for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
		matches[i], matches[j] = matches[j], matches[i]
	}
	return matches
}

// reverseRunes reverses s rune-wise. Byte-wise reversal would shred
// multi-byte Devanagari code points.
func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
