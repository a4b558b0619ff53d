/*
Package stemmer splits a Nepali surface word into a morphological root and a
(possibly empty) suffix by rule-based, dictionary-free affix stripping.

The engine tries the catalogue's suffixes longest first and accepts the first
one that leaves a root of at least the configured minimum length. Matching is
greedy and deterministic: once a suffix is accepted no shorter alternative is
considered, and a single stripping pass is performed; the engine never strips
a second suffix layer. For every input the result reconstructs the original
word exactly: Root + Suffix == word.

No case or script normalization happens here; input is matched on the
code-point sequence as given. Stemmers are immutable after construction and
safe for concurrent use by multiple goroutines.

Known limitations:

  - One suffix layer only. हरूको is in the catalogue as a single entry rather
    than being derived from हरू + को.
  - No sandhi restoration at the morpheme boundary; the root is the literal
    remainder of the word.
  - No lexicon lookup: the root is not validated against a dictionary.
*/
package stemmer

import (
	"bufio"
	_ "embed"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/bleyesh/Nepali-Stemmer/pkg/catalogue"
)

//go:embed stopwords.txt
var stopwordsRaw string

// DefaultMinRootLen is the minimum root length in runes left after stripping.
// Guards against reducing short words to single meaningless characters.
const DefaultMinRootLen = 2

// ErrEmptyWord is returned by Stem for empty input. Callers processing a
// corpus should record the line as a failure and continue.
var ErrEmptyWord = errors.New("stemmer: empty word")

// Result is one stemming decision. Root + Suffix always equals the input
// word; Suffix is "" when no catalogue suffix matched.
type Result struct {
	Root   string
	Suffix string
}

// Option configures a Stemmer at construction time.
type Option func(*Stemmer)

// WithMinRootLen overrides the minimum root length guard (in runes).
func WithMinRootLen(n int) Option {
	return func(s *Stemmer) { s.minRootLen = n }
}

// WithMinRootRatio adds a relative guard: the root must keep at least the
// given fraction of the word's runes. Zero disables the guard.
func WithMinRootRatio(r float64) Option {
	return func(s *Stemmer) { s.minRootRatio = r }
}

// WithStopwords makes the stemmer return the listed words unchanged.
func WithStopwords(words []string) Option {
	return func(s *Stemmer) {
		s.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			s.stopwords[w] = struct{}{}
		}
	}
}

// WithDefaultStopwords enables the embedded Nepali stopword list.
func WithDefaultStopwords() Option {
	return WithStopwords(DefaultStopwords())
}

// DefaultStopwords returns the embedded Nepali stopword list.
func DefaultStopwords() []string {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(stopwordsRaw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}

// Stemmer applies the catalogue's suffixes to surface words. Immutable after
// New; one instance may serve any number of goroutines.
type Stemmer struct {
	cat          *catalogue.Catalogue
	minRootLen   int
	minRootRatio float64
	stopwords    map[string]struct{}
}

// New builds a Stemmer over the given catalogue.
func New(cat *catalogue.Catalogue, opts ...Option) *Stemmer {
	s := &Stemmer{
		cat:        cat,
		minRootLen: DefaultMinRootLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MinRootLen returns the configured minimum root length in runes.
func (s *Stemmer) MinRootLen() int {
	return s.minRootLen
}

// Stem splits word into root and suffix. The first catalogue candidate (in
// longest-first order) that matches the ending and leaves a valid root wins;
// if none does, the word is returned unchanged as the root.
func (s *Stemmer) Stem(word string) (Result, error) {
	if word == "" {
		return Result{}, ErrEmptyWord
	}
	if _, skip := s.stopwords[word]; skip {
		return Result{Root: word}, nil
	}

	wordLen := utf8.RuneCountInString(word)
	for _, suffix := range s.cat.MatchesEnding(word) {
		rootLen := wordLen - utf8.RuneCountInString(suffix)
		if rootLen < s.minRootLen {
			continue
		}
		if s.minRootRatio > 0 && float64(rootLen) < s.minRootRatio*float64(wordLen) {
			continue
		}
		// Byte slicing is safe: the catalogue matched the exact ending.
		return Result{
			Root:   word[:len(word)-len(suffix)],
			Suffix: suffix,
		}, nil
	}
	return Result{Root: word}, nil
}

// StemAll stems a slice of words, index-aligned with the input, and reports
// how many of them the engine rejected. Rejected words (empty strings) pass
// through as suffix-less results so batch callers keep line alignment.
func (s *Stemmer) StemAll(words []string) ([]Result, int) {
	out := make([]Result, len(words))
	failures := 0
	for i, w := range words {
		res, err := s.Stem(w)
		if err != nil {
			failures++
			out[i] = Result{Root: w}
			continue
		}
		out[i] = res
	}
	return out, failures
}
