// Package icon maps window metadata to display glyphs and renders
// ordered glyph lists into workspace-name annotations.
package icon

import (
	"sort"
	"strings"
)

// Table holds the class- and name-keyed icon lookups. Keys are
// lowercased once at construction; the table is read-only afterwards,
// so it can be shared across reconciliation passes without locking.
type Table struct {
	byClass map[string]string
	byName  map[string]string

	// name keys in sorted order, for deterministic prefix matching
	nameKeys []string
}

// NewTable builds a frozen table from raw mappings. Input keys may be
// in any case; duplicates that collide after lowercasing keep the
// lexicographically later key's value.
func NewTable(byClass, byName map[string]string) *Table {
	t := &Table{
		byClass: make(map[string]string, len(byClass)),
		byName:  make(map[string]string, len(byName)),
	}
	for key, glyph := range byClass {
		t.byClass[strings.ToLower(key)] = glyph
	}
	for key, glyph := range byName {
		t.byName[strings.ToLower(key)] = glyph
	}
	t.nameKeys = make([]string, 0, len(t.byName))
	for key := range t.byName {
		t.nameKeys = append(t.nameKeys, key)
	}
	sort.Strings(t.nameKeys)
	return t
}

// ClassIcon looks up an icon by exact window class, case-insensitively.
func (t *Table) ClassIcon(class string) (string, bool) {
	glyph, ok := t.byClass[strings.ToLower(class)]
	return glyph, ok
}

// NameIcon looks up an icon by exact window name, case-insensitively.
func (t *Table) NameIcon(name string) (string, bool) {
	glyph, ok := t.byName[strings.ToLower(name)]
	return glyph, ok
}

// NamePrefixIcon returns the icon of the first table key the given
// window name starts with. Keys are checked in sorted order so repeated
// calls with the same input always return the same icon.
func (t *Table) NamePrefixIcon(name string) (string, bool) {
	lowered := strings.ToLower(name)
	for _, key := range t.nameKeys {
		if strings.HasPrefix(lowered, key) {
			return t.byName[key], true
		}
	}
	return "", false
}

// Entry is one key-to-glyph mapping, used when listing the table.
type Entry struct {
	Key  string
	Icon string
}

// ClassEntries returns the class table sorted by key.
func (t *Table) ClassEntries() []Entry {
	return sortedEntries(t.byClass)
}

// NameEntries returns the name table sorted by key.
func (t *Table) NameEntries() []Entry {
	return sortedEntries(t.byName)
}

func sortedEntries(m map[string]string) []Entry {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry{Key: key, Icon: m[key]})
	}
	return entries
}
