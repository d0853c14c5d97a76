package icon

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how an ordered icon list is rendered into the
// workspace-name annotation.
type Mode string

const (
	// ModeDefault concatenates icons in order with no separator.
	ModeDefault Mode = "default"
	// ModeMathematician collapses adjacent repeats using superscript
	// counts, e.g. [A A A B] renders as A³B.
	ModeMathematician Mode = "mathematician"
	// ModeChemist collapses adjacent repeats using subscript counts,
	// e.g. [A A A B] renders as A₃B.
	ModeChemist Mode = "chemist"
)

// ErrInvalidFormatMode is returned for format mode strings outside the
// closed set. It is surfaced to the caller, never silently defaulted.
var ErrInvalidFormatMode = errors.New("invalid icon list format mode")

// ParseMode validates a mode string from configuration or the command
// line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDefault, ModeMathematician, ModeChemist:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q (accepted: default, mathematician, chemist)", ErrInvalidFormatMode, s)
}

// Format renders an ordered icon list according to mode.
func Format(icons []string, mode Mode) (string, error) {
	switch mode {
	case ModeDefault:
		return strings.Join(icons, ""), nil
	case ModeMathematician:
		return runLength(icons, superscriptDigits), nil
	case ModeChemist:
		return runLength(icons, subscriptDigits), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormatMode, mode)
}

// SingleIcon collapses a list to its first non-default icon, or the
// default icon when every entry is the default. An empty list stays
// empty so icon-free workspaces keep clean names.
func SingleIcon(icons []string, defaultIcon string) []string {
	if len(icons) == 0 {
		return nil
	}
	for _, glyph := range icons {
		if glyph != defaultIcon {
			return []string{glyph}
		}
	}
	return []string{defaultIcon}
}

var superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

// runLength encodes adjacent identical icons as icon+count, rendering
// the count with the given digit glyphs. Runs of one render bare.
func runLength(icons []string, digits [10]rune) string {
	var b strings.Builder
	for i := 0; i < len(icons); {
		j := i + 1
		for j < len(icons) && icons[j] == icons[i] {
			j++
		}
		b.WriteString(icons[i])
		if count := j - i; count > 1 {
			for _, d := range strconv.Itoa(count) {
				b.WriteRune(digits[d-'0'])
			}
		}
		i = j
	}
	return b.String()
}
