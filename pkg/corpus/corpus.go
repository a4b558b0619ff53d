// Package corpus reads surface words and gold answers from text files,
// one whitespace-delimited entry per line, and owns input normalization.
// The stripping engine itself never touches files or normalizes input.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// nukta combining mark, stripped during normalization so that variant
// spellings match the suffix catalogue.
const nukta = "़"

// Normalize trims surrounding whitespace and removes the nukta mark.
// Applied by the readers and the interactive shell before stemming.
func Normalize(word string) string {
	return strings.ReplaceAll(strings.TrimSpace(word), nukta, "")
}

// ReadLines loads a file's lines with surrounding whitespace trimmed.
// Blank lines are dropped, so corpus and gold files stay index-aligned as
// long as they are blank on the same lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// ReadWords loads corpus words: ReadLines plus normalization per word.
func ReadWords(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		lines[i] = Normalize(line)
	}
	return lines, nil
}
