package catalogue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		wantErr bool
	}{
		{"valid", []string{"हरू", "को", "ले"}, false},
		{"single entry", []string{"ता"}, false},
		{"empty source", nil, true},
		{"empty entry", []string{"हरू", "", "ले"}, true},
		{"duplicate", []string{"को", "ले", "को"}, true},
		{"duplicate adjacent", []string{"ता", "ता"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(tt.entries)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load(%v) succeeded, want error", tt.entries)
				}
				var catErr *Error
				if !errors.As(err, &catErr) {
					t.Errorf("error %T is not a *catalogue.Error", err)
				}
				if c != nil {
					t.Error("Load returned a catalogue alongside an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%v) failed: %v", tt.entries, err)
			}
			if c.Len() != len(tt.entries) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.entries))
			}
		})
	}
}

func TestCandidatesOrdering(t *testing.T) {
	c, err := Load([]string{"को", "हरूको", "ले", "हरू", "लाई"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := c.Candidates()
	// Descending rune length, equal lengths keep declaration order.
	want := []string{"हरूको", "हरू", "लाई", "को", "ले"}
	if len(got) != len(want) {
		t.Fatalf("Candidates() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesTieOrderIsDeclarationOrder(t *testing.T) {
	c, err := Load([]string{"मा", "को", "ले"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := c.Candidates()
	want := []string{"मा", "को", "ले"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tie order broken: Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesReturnsCopy(t *testing.T) {
	c, err := Load([]string{"हरू", "को"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	first := c.Candidates()
	first[0] = "mutated"
	second := c.Candidates()
	if second[0] == "mutated" {
		t.Error("mutating the returned slice changed the catalogue")
	}
}

func TestMatchesEnding(t *testing.T) {
	c, err := Load([]string{"हरू", "को", "ले", "हरूले", "ता"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name string
		word string
		want []string
	}{
		{"stacked plural+ergative", "केटाहरूले", []string{"हरूले", "ले"}},
		{"genitive", "किताबको", []string{"को"}},
		{"no match", "नेपाल", nil},
		{"empty word", "", nil},
		{"word equals suffix", "हरू", []string{"हरू"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.MatchesEnding(tt.word)
			if len(got) != len(tt.want) {
				t.Fatalf("MatchesEnding(%q) = %v, want %v", tt.word, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("MatchesEnding(%q)[%d] = %q, want %q", tt.word, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The trie walk must agree with a plain longest-first scan of the
// candidate list for every word.
func TestMatchesEndingAgreesWithScan(t *testing.T) {
	c, err := Load([]string{"हरूलाई", "हरूको", "लाई", "को", "ले", "हरू", "यो", "ता"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	words := []string{"केटाहरूले", "किताबहरूलाई", "घरको", "सफलता", "लेख्यो", "नेपाल", "ता", ""}
	for _, word := range words {
		var scan []string
		for _, suffix := range c.Candidates() {
			if strings.HasSuffix(word, suffix) {
				scan = append(scan, suffix)
			}
		}
		got := c.MatchesEnding(word)
		if len(got) != len(scan) {
			t.Errorf("word %q: trie %v, scan %v", word, got, scan)
			continue
		}
		for i := range scan {
			if got[i] != scan[i] {
				t.Errorf("word %q: trie[%d]=%q, scan[%d]=%q", word, i, got[i], i, scan[i])
			}
		}
	}
}

func TestDefaultCatalogue(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("embedded catalogue is empty")
	}

	seen := make(map[string]bool)
	prevLen := int(^uint(0) >> 1)
	for _, s := range c.Candidates() {
		if s == "" {
			t.Error("embedded catalogue contains an empty suffix")
		}
		if seen[s] {
			t.Errorf("embedded catalogue contains duplicate %q", s)
		}
		seen[s] = true
		l := utf8.RuneCountInString(s)
		if l > prevLen {
			t.Errorf("candidate %q (len %d) out of order after length %d", s, l, prevLen)
		}
		prevLen = l
	}

	for _, known := range []string{"हरू", "को", "ले", "लाई", "हरूलाई"} {
		if !seen[known] {
			t.Errorf("embedded catalogue is missing %q", known)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suffixes.txt")
	content := "# comment line\nहरू\n\nको\n  ले  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("LoadFile on a missing file succeeded, want error")
	}
}

func TestReverseRunes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "ba"},
		{"हरू", "ूरह"},
		{"केटा", "ाटेक"},
	}
	for _, tt := range tests {
		if got := reverseRunes(tt.in); got != tt.want {
			t.Errorf("reverseRunes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
