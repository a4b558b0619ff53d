package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "किताब", "किताब"},
		{"surrounding whitespace", "  किताब\t", "किताब"},
		{"trailing newline", "घर\n", "घर"},
		{"nukta removed", "ज़रूर", "जरूर"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "किताबहरू\n\n  घरको  \nनेपाल\n\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	want := []string{"किताबहरू", "घरको", "नेपाल"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadLines on a missing file succeeded, want error")
	}
}

func TestReadWordsNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("ज़रूर\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	words, err := ReadWords(path)
	if err != nil {
		t.Fatalf("ReadWords failed: %v", err)
	}
	if len(words) != 1 || words[0] != "जरूर" {
		t.Errorf("ReadWords = %v, want [जरूर]", words)
	}
}
