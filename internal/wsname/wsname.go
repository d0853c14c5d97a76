// Package wsname parses and builds workspace display names of the form
// "<num>:<shortname> <icons>". Every part is optional; parsing is
// best-effort and never fails.
package wsname

import (
	"strconv"
	"strings"
)

// Parts is the structured decomposition of a workspace display name.
// A nil Num means the name had no leading number. Icons holds the
// already-formatted icon annotation, empty when the name had none.
type Parts struct {
	Num       *int
	Shortname string
	Icons     string
}

// Parse splits a workspace name into its parts. Names without a leading
// number are treated as a bare shortname so that Construct(Parse(s))
// reproduces s for any name without an icon annotation.
func Parse(name string) Parts {
	digits := 0
	for digits < len(name) && name[digits] >= '0' && name[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		// No number: the whole string is the shortname. Splitting on
		// spaces here would misread multi-word names users set by hand.
		return Parts{Shortname: name}
	}

	num, err := strconv.Atoi(name[:digits])
	if err != nil {
		// Digit run too long for an int; degrade like the no-number case.
		return Parts{Shortname: name}
	}

	rest := name[digits:]
	switch {
	case rest == "":
	case rest[0] == ':':
		rest = rest[1:]
		if rest == "" {
			// A bare trailing colon has no Parts representation;
			// keep the name intact as a shortname.
			return Parts{Shortname: name}
		}
	case rest[0] == ' ':
	default:
		// Digits running into other text ("12x") are not a numbered
		// name; anything else would break the round trip.
		return Parts{Shortname: name}
	}

	shortname, icons, _ := strings.Cut(rest, " ")
	return Parts{Num: &num, Shortname: shortname, Icons: icons}
}

// Construct is the inverse of Parse for the number and shortname. When
// Icons is empty the annotation block and its separator are omitted
// entirely, which is what produces the clean name on shutdown.
func Construct(p Parts) string {
	var b strings.Builder
	if p.Num != nil {
		b.WriteString(strconv.Itoa(*p.Num))
	}
	if p.Shortname != "" || p.Icons != "" {
		if p.Num != nil {
			b.WriteString(":")
		}
		b.WriteString(p.Shortname)
		if p.Icons != "" {
			b.WriteString(" ")
			b.WriteString(p.Icons)
		}
	}
	return b.String()
}

// Num returns a *int for use in Parts literals.
func Num(n int) *int {
	return &n
}
