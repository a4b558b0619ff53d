/*
Package bench runs the stemmer over a word corpus and scores the output
against human-annotated gold answers.

Data flow is strictly one way: engine output is written first, gold files are
only read for comparison afterwards. The engine never sees gold data, so the
benchmark cannot leak answers into the algorithm. A word the engine rejects
(for instance an empty line artifact) is recorded as a failure for that line
and the run continues; one bad line never aborts a batch.
*/
package bench

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/bleyesh/Nepali-Stemmer/internal/utils"
	"github.com/bleyesh/Nepali-Stemmer/pkg/corpus"
	"github.com/bleyesh/Nepali-Stemmer/pkg/stemmer"
)

// Options locates the corpus, gold and output files for one benchmark run.
// Gold paths may be empty: the outputs are still written, only the accuracy
// figures are skipped.
type Options struct {
	CorpusPath       string
	GoldRootPath     string
	GoldSuffixPath   string
	OutputRootPath   string
	OutputSuffixPath string
}

// Report aggregates per-line correctness into summary statistics.
// Accuracy and reduction figures are percentages; precision, recall and
// F-measure are fractions.
type Report struct {
	Lines    int // corpus lines stemmed
	Compared int // lines scored against gold roots
	Failures int // lines the engine rejected

	RootMatches      int
	RootAccuracy     float64
	RootEditAccuracy float64

	SuffixCompared int
	SuffixMatches  int
	SuffixAccuracy float64

	Precision float64
	Recall    float64
	FMeasure  float64

	// Average root-length reduction relative to the surface word, for the
	// gold roots and the produced roots. A large gap between the two means
	// the engine systematically over- or under-strips.
	AvgGoldReduction     float64
	AvgProducedReduction float64
}

// Runner drives one batch run: stem every corpus word, write the produced
// roots and suffixes, then score them against the gold answers.
type Runner struct {
	stemmer *stemmer.Stemmer
	opts    Options
	logger  *log.Logger
}

// NewRunner builds a Runner. A nil logger falls back to the package default.
func NewRunner(s *stemmer.Stemmer, opts Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if opts.OutputRootPath == "" {
		opts.OutputRootPath = "output_root.txt"
	}
	if opts.OutputSuffixPath == "" {
		opts.OutputSuffixPath = "output_suffix.txt"
	}
	return &Runner{stemmer: s, opts: opts, logger: logger}
}

// Run executes the benchmark and returns the aggregated report.
func (r *Runner) Run() (*Report, error) {
	words, err := corpus.ReadWords(r.opts.CorpusPath)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("corpus %s has no words", r.opts.CorpusPath)
	}

	report := &Report{Lines: len(words)}
	results, failures := r.stemmer.StemAll(words)
	report.Failures = failures
	if failures > 0 {
		r.logger.Warnf("%d corpus lines could not be stemmed", failures)
	}

	roots := make([]string, len(results))
	suffixes := make([]string, len(results))
	for i, res := range results {
		roots[i] = res.Root
		suffixes[i] = res.Suffix
	}
	if err := writeColumn(r.opts.OutputRootPath, roots); err != nil {
		return nil, err
	}
	if err := writeColumn(r.opts.OutputSuffixPath, suffixes); err != nil {
		return nil, err
	}

	if r.opts.GoldRootPath != "" {
		if err := r.scoreRoots(words, roots, report); err != nil {
			return nil, err
		}
	}
	if r.opts.GoldSuffixPath != "" {
		if err := r.scoreSuffixes(suffixes, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// scoreRoots compares produced roots to the gold roots line by line.
func (r *Runner) scoreRoots(words, roots []string, report *Report) error {
	gold, err := corpus.ReadLines(r.opts.GoldRootPath)
	if err != nil {
		return err
	}

	n := len(gold)
	if len(roots) < n {
		n = len(roots)
	}
	if n == 0 {
		return fmt.Errorf("gold root file %s has no lines", r.opts.GoldRootPath)
	}
	if len(gold) != len(roots) {
		r.logger.Warnf("gold roots (%d) and produced roots (%d) differ in length, comparing first %d",
			len(gold), len(roots), n)
	}

	var editTotal, goldReduction, producedReduction float64
	truePositives, misses := 0, 0
	for i := 0; i < n; i++ {
		if gold[i] == roots[i] {
			report.RootMatches++
			truePositives++
		} else {
			misses++
		}
		editTotal += EditAccuracy(gold[i], roots[i])

		wordLen := utf8.RuneCountInString(words[i])
		if wordLen > 0 {
			goldReduction += float64(wordLen-utf8.RuneCountInString(gold[i])) / float64(wordLen) * 100
			producedReduction += float64(wordLen-utf8.RuneCountInString(roots[i])) / float64(wordLen) * 100
		}
	}

	report.Compared = n
	report.RootAccuracy = float64(report.RootMatches) / float64(n) * 100
	report.RootEditAccuracy = editTotal / float64(n) * 100
	report.AvgGoldReduction = goldReduction / float64(n)
	report.AvgProducedReduction = producedReduction / float64(n)

	// Exact matches count as true positives and every miss as both a false
	// positive and a false negative, so precision and recall coincide.
	if truePositives+misses > 0 {
		report.Precision = float64(truePositives) / float64(truePositives+misses)
		report.Recall = report.Precision
	}
	if report.Precision+report.Recall > 0 {
		report.FMeasure = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}
	return nil
}

// scoreSuffixes compares produced suffixes to the gold suffixes. Gold files
// mark "no suffix" with a blank line, which ReadLines drops, so only the
// first min(len) lines are comparable.
func (r *Runner) scoreSuffixes(suffixes []string, report *Report) error {
	gold, err := corpus.ReadLines(r.opts.GoldSuffixPath)
	if err != nil {
		return err
	}

	n := len(gold)
	if len(suffixes) < n {
		n = len(suffixes)
	}
	if len(gold) != len(suffixes) {
		r.logger.Warnf("gold suffixes (%d) and produced suffixes (%d) differ in length, comparing first %d",
			len(gold), len(suffixes), n)
	}
	for i := 0; i < n; i++ {
		if gold[i] == suffixes[i] {
			report.SuffixMatches++
		}
	}
	report.SuffixCompared = n
	if n > 0 {
		report.SuffixAccuracy = float64(report.SuffixMatches) / float64(n) * 100
	}
	return nil
}

// Log writes the report summary through the given logger.
func (rep *Report) Log(logger *log.Logger) {
	logger.Infof("lines stemmed: %s (failures: %d)", utils.FormatWithCommas(rep.Lines), rep.Failures)
	if rep.Compared > 0 {
		logger.Infof("root exact matches: %d/%d (%.2f%%)", rep.RootMatches, rep.Compared, rep.RootAccuracy)
		logger.Infof("root edit-distance accuracy: %.2f%%", rep.RootEditAccuracy)
		logger.Infof("precision: %.4f  recall: %.4f  f-measure: %.4f", rep.Precision, rep.Recall, rep.FMeasure)
		logger.Infof("avg reduction gold: %.2f%%  produced: %.2f%%  gap: %.2f%%",
			rep.AvgGoldReduction, rep.AvgProducedReduction,
			abs(rep.AvgGoldReduction-rep.AvgProducedReduction))
	}
	if rep.SuffixCompared > 0 {
		logger.Infof("suffix exact matches: %d/%d (%.2f%%)", rep.SuffixMatches, rep.SuffixCompared, rep.SuffixAccuracy)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// writeColumn writes one entry per line, index-aligned with the corpus.
func writeColumn(path string, entries []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		fmt.Fprintln(w, entry)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
