package icon

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMode_Accepted(t *testing.T) {
	for _, s := range []string{"default", "mathematician", "chemist"} {
		mode, err := ParseMode(s)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", s, err)
		}
		if string(mode) != s {
			t.Fatalf("ParseMode(%q) = %q", s, mode)
		}
	}
}

func TestParseMode_RejectsUnknown(t *testing.T) {
	_, err := ParseMode("physicist")
	if !errors.Is(err, ErrInvalidFormatMode) {
		t.Fatalf("expected ErrInvalidFormatMode, got %v", err)
	}
}

func TestFormat_Default(t *testing.T) {
	got, err := Format([]string{"A", "B", "A"}, ModeDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABA" {
		t.Fatalf("expected %q, got %q", "ABA", got)
	}
}

func TestFormat_MathematicianCollapsesAdjacentRuns(t *testing.T) {
	got, err := Format([]string{"A", "A", "A", "B"}, ModeMathematician)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A³B" {
		t.Fatalf("expected %q, got %q", "A³B", got)
	}
}

func TestFormat_OnlyAdjacentRepeatsCollapse(t *testing.T) {
	// aababa must not factor globally: only the adjacent "aa" collapses.
	got, err := Format([]string{"a", "a", "b", "a", "b", "a"}, ModeChemist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a₂baba" {
		t.Fatalf("expected %q, got %q", "a₂baba", got)
	}
}

func TestFormat_MultiDigitCounts(t *testing.T) {
	icons := make([]string, 12)
	for i := range icons {
		icons[i] = "T"
	}
	got, err := Format(icons, ModeMathematician)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "T¹²" {
		t.Fatalf("expected %q, got %q", "T¹²", got)
	}
	got, err = Format(icons, ModeChemist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "T₁₂" {
		t.Fatalf("expected %q, got %q", "T₁₂", got)
	}
}

func TestFormat_CountsArePreserved(t *testing.T) {
	icons := []string{"x", "x", "y", "y", "y", "x", "z"}
	got, err := Format(icons, ModeMathematician)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Decode: each icon contributes its trailing superscript count,
	// or 1 when the count is absent.
	decode := map[rune]int{'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4, '⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9}
	total := 0
	haveIcon := false
	count := 0
	flush := func() {
		if !haveIcon {
			return
		}
		if count == 0 {
			count = 1
		}
		total += count
	}
	for _, r := range got {
		if d, ok := decode[r]; ok {
			count = count*10 + d
			continue
		}
		flush()
		haveIcon = true
		count = 0
	}
	flush()
	if total != len(icons) {
		t.Fatalf("decoded %d windows from %q, want %d", total, got, len(icons))
	}
}

func TestFormat_RejectsUnknownMode(t *testing.T) {
	_, err := Format([]string{"A"}, Mode("alchemist"))
	if !errors.Is(err, ErrInvalidFormatMode) {
		t.Fatalf("expected ErrInvalidFormatMode, got %v", err)
	}
}

func TestSingleIcon(t *testing.T) {
	if got := SingleIcon([]string{"*", "F", "G"}, "*"); len(got) != 1 || got[0] != "F" {
		t.Fatalf("expected first non-default icon, got %v", got)
	}
	if got := SingleIcon([]string{"*", "*"}, "*"); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected default icon when all default, got %v", got)
	}
	if got := SingleIcon(nil, "*"); got != nil {
		t.Fatalf("expected empty list to stay empty, got %v", got)
	}
}

func TestFormat_EmptyList(t *testing.T) {
	for _, mode := range []Mode{ModeDefault, ModeMathematician, ModeChemist} {
		got, err := Format(nil, mode)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", mode, err)
		}
		if strings.TrimSpace(got) != "" {
			t.Fatalf("expected empty output for %s, got %q", mode, got)
		}
	}
}
