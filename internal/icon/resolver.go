package icon

import "log/slog"

// Source answers window-property queries for a window identifier. A nil
// or empty slice means the property is absent; lookup failures are the
// source's concern and surface here as absence.
type Source interface {
	// Classes returns the window's WM_CLASS values in property order.
	Classes(window int64) []string
	// Names returns the window's WM_NAME values in property order.
	Names(window int64) []string
}

// ResolverOptions control matching precedence and strictness.
type ResolverOptions struct {
	// DefaultIcon is returned when neither table matches.
	DefaultIcon string
	// NamesFirst tries name-based resolution before class-based.
	NamesFirst bool
	// ExactNameMatch requires window names to equal a table key.
	// When false, a window name only has to start with one.
	ExactNameMatch bool
	Logger         *slog.Logger
}

// Resolver derives a display icon from a window's metadata. Resolution
// never fails: both lookups missing degrades to the default icon.
type Resolver struct {
	table  *Table
	source Source
	opts   ResolverOptions
	logger *slog.Logger
}

// NewResolver creates a resolver over a frozen table and a property source.
func NewResolver(table *Table, source Source, opts ResolverOptions) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{table: table, source: source, opts: opts, logger: logger}
}

// Resolve returns the icon for a window. The configured precedence
// decides whether names or classes are consulted first; the first match
// wins, and no match at all yields the default icon.
func (r *Resolver) Resolve(window int64) string {
	first, second := r.byClass, r.byName
	if r.opts.NamesFirst {
		first, second = r.byName, r.byClass
	}
	if glyph, ok := first(window); ok {
		return glyph
	}
	if glyph, ok := second(window); ok {
		return glyph
	}
	return r.opts.DefaultIcon
}

// byClass matches the window's WM_CLASS values exactly against the
// class table.
func (r *Resolver) byClass(window int64) (string, bool) {
	classes := r.source.Classes(window)
	for _, class := range classes {
		if glyph, ok := r.table.ClassIcon(class); ok {
			return glyph, true
		}
	}
	r.logger.Info("no icon for window classes", "window", window, "classes", classes)
	return "", false
}

// byName matches the window's WM_NAME values against the name table,
// exactly or by prefix depending on configuration.
func (r *Resolver) byName(window int64) (string, bool) {
	names := r.source.Names(window)
	for _, name := range names {
		if r.opts.ExactNameMatch {
			if glyph, ok := r.table.NameIcon(name); ok {
				return glyph, true
			}
		} else if glyph, ok := r.table.NamePrefixIcon(name); ok {
			return glyph, true
		}
	}
	r.logger.Info("no icon for window names", "window", window, "names", names)
	return "", false
}
