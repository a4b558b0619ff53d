// Copyright 2025 The Nepali-Stemmer Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the Nepali stemmer CLI and benchmark application.

Nepstem splits a Nepali surface word into a morphological root and suffix by
rule-based affix stripping: the suffix catalogue is tried longest first and
the first candidate leaving a long-enough root wins. There is no dictionary,
no learned model, and no randomness; the same word always yields the same
split.

# Usage

Run the interactive shell (the default mode):

	nepstem

Benchmark a corpus against gold annotations:

	nepstem -bench -corpus input.txt -gold-root answer_root.txt -gold-suffix answer_suffix.txt

Serve stemming requests over msgpack IPC on stdin/stdout:

	nepstem -serve

# Configuration

Runtime configuration is managed through a TOML file covering engine
parameters, benchmark file locations, and shell defaults:

	[stemmer]
	min_root_length = 2
	min_root_ratio = 0.3
	use_stopwords = true
	suffix_file = ""

	[bench]
	corpus = "input.txt"
	gold_root = "answer_root.txt"
	gold_suffix = "answer_suffix.txt"
	output_root = "output_root.txt"
	output_suffix = "output_suffix.txt"

The config file is automatically created with defaults if it doesn't exist.
An empty suffix_file means the embedded catalogue; pointing it at a file (one
suffix per line, '#' comments) swaps the whole catalogue at startup. A
malformed catalogue aborts startup; the engine never runs on a partially
valid suffix set.

# Modes

Interactive mode reads one word per line from stdin, normalizes it (trim plus
nukta removal), and prints the root and suffix with optional detail. Batch
mode stems every corpus line, writes output_root.txt and output_suffix.txt
index-aligned with the corpus, and reports exact-match accuracy, edit-distance
accuracy, precision/recall/F-measure and reduction ratios against the gold
files. Server mode speaks the msgpack protocol documented in pkg/server.

# Command Line Flags

The following flags control application behavior:

	-bench
	    Run the corpus benchmark instead of the interactive shell
	-serve
	    Run the msgpack IPC server instead of the interactive shell
	-corpus, -gold-root, -gold-suffix, -out-root, -out-suffix
	    Override the [bench] file locations
	-suffixes string
	    Load the suffix catalogue from a file instead of the embedded set
	-minroot int
	    Minimum root length in characters left after stripping
	-no-stopwords
	    Stem stopwords too instead of passing them through
	-no-filter
	    Accept non-Devanagari input in the interactive shell
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bleyesh/Nepali-Stemmer/internal/cli"
	"github.com/bleyesh/Nepali-Stemmer/internal/logger"
	"github.com/bleyesh/Nepali-Stemmer/pkg/bench"
	"github.com/bleyesh/Nepali-Stemmer/pkg/catalogue"
	"github.com/bleyesh/Nepali-Stemmer/pkg/config"
	"github.com/bleyesh/Nepali-Stemmer/pkg/server"
	"github.com/bleyesh/Nepali-Stemmer/pkg/stemmer"
)

const (
	Version = "1.0.0"
	AppName = "nepstem"
	gh      = "https://github.com/bleyesh/Nepali-Stemmer"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, catalogue and engine together and dispatches to the
// selected mode. It manages the flow only; the logic lives in the packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	benchMode := flag.Bool("bench", false, "Run the corpus benchmark")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server")
	configPath := flag.String("config", "", "Custom config file path")
	suffixFile := flag.String("suffixes", "", "Suffix catalogue file (empty = embedded set)")
	minRoot := flag.Int("minroot", defaults.Stemmer.MinRootLength, "Minimum root length in characters")
	noStopwords := flag.Bool("no-stopwords", false, "Stem stopwords instead of passing them through")
	noFilter := flag.Bool("no-filter", defaults.CLI.NoFilter, "Accept non-Devanagari input in the shell")
	corpusPath := flag.String("corpus", "", "Corpus file: one Nepali word per line")
	goldRoot := flag.String("gold-root", "", "Gold roots file, line-aligned with the corpus")
	goldSuffix := flag.String("gold-suffix", "", "Gold suffixes file, line-aligned with the corpus")
	outRoot := flag.String("out-root", "", "Produced roots output file")
	outSuffix := flag.String("out-suffix", "", "Produced suffixes output file")

	flag.Parse()
	seen := flagsSeen(flag.CommandLine)

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// Flags outrank the config file. Flags left at their default fall back
	// to whatever the loaded config says, not to the builtin defaults the
	// flag declarations were seeded with.
	if *suffixFile == "" {
		*suffixFile = appConfig.Stemmer.SuffixFile
	}
	cat, err := loadCatalogue(*suffixFile)
	if err != nil {
		log.Fatalf("Failed to load suffix catalogue: %v", err)
	}
	log.Debugf("Catalogue ready: %d suffixes", cat.Len())

	minRootLen := pickInt(seen["minroot"], *minRoot, appConfig.Stemmer.MinRootLength)
	filterOff := pickBool(seen["no-filter"], *noFilter, appConfig.CLI.NoFilter)

	opts := []stemmer.Option{stemmer.WithMinRootLen(minRootLen)}
	if appConfig.Stemmer.MinRootRatio > 0 {
		opts = append(opts, stemmer.WithMinRootRatio(appConfig.Stemmer.MinRootRatio))
	}
	if appConfig.Stemmer.UseStopwords && !*noStopwords {
		opts = append(opts, stemmer.WithDefaultStopwords())
	}
	engine := stemmer.New(cat, opts...)

	switch {
	case *serveMode:
		log.Debug("spawning IPC")
		srv := server.NewServer(engine)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case *benchMode:
		benchOpts := bench.Options{
			CorpusPath:       pick(*corpusPath, appConfig.Bench.Corpus),
			GoldRootPath:     pick(*goldRoot, appConfig.Bench.GoldRoot),
			GoldSuffixPath:   pick(*goldSuffix, appConfig.Bench.GoldSuffix),
			OutputRootPath:   pick(*outRoot, appConfig.Bench.OutputRoot),
			OutputSuffixPath: pick(*outSuffix, appConfig.Bench.OutputSuffix),
		}
		reportLog := logger.NewReport(AppName)
		runner := bench.NewRunner(engine, benchOpts, reportLog)
		report, err := runner.Run()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
		report.Log(reportLog)

	default:
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(engine, appConfig.CLI.ShowDetail, filterOff)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	}
}

// loadCatalogue picks the embedded catalogue or a user file.
func loadCatalogue(path string) (*catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Default(), nil
	}
	return catalogue.LoadFile(path)
}

// pick returns the flag value when set, the config value otherwise.
func pick(flagVal, configVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return configVal
}

// flagsSeen reports which flags were given explicitly on the command line.
// Flags absent from the set carry only their declaration default, which must
// not shadow a value the config file sets.
func flagsSeen(fs *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

// pickInt returns the flag value when the flag was given, the config value
// otherwise. Unlike pick, the zero value cannot stand in for "unset": 0 is a
// meaningful root length, so explicitness is tracked via flagsSeen.
func pickInt(flagSet bool, flagVal, configVal int) int {
	if flagSet {
		return flagVal
	}
	return configVal
}

// pickBool is pickInt for boolean flags.
func pickBool(flagSet bool, flagVal, configVal bool) bool {
	if flagSet {
		return flagVal
	}
	return configVal
}

// printVersion displays the styled version banner.
func printVersion() {
	vlog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Print("[ Nepstem ] Rule-based Nepali root/suffix splitter")
	vlog.Print("", "version", Version)
	vlog.Print("")
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}
