// Package config loads wsglyph configuration: icon tables, matching
// behavior, numbering, and the icon list format.
package config

import (
	"fmt"

	"github.com/1broseidon/wsglyph/internal/icon"
)

// IconTables holds the raw icon mappings from configuration. Keys are
// matched case-insensitively; lowercasing happens once when the frozen
// lookup table is built, not here.
type IconTables struct {
	// ByClass maps WM_CLASS values to glyphs.
	ByClass map[string]string `yaml:"by_class"`
	// ByName maps WM_NAME values to glyphs.
	ByName map[string]string `yaml:"by_name"`
}

// Config is the effective wsglyph configuration.
type Config struct {
	// DefaultIcon is shown for windows neither table matches.
	DefaultIcon string `yaml:"default_icon"`

	// SingleIconOnly shows only the first non-default icon per workspace.
	SingleIconOnly bool `yaml:"single_icon_only"`

	// RenumberWorkspaces assigns ascending numbers with a gap per
	// output transition. Default: true.
	RenumberWorkspaces *bool `yaml:"renumber_workspaces"`

	// CheckWindowNamesFirst tries name-based icon resolution before
	// class-based. Default: true.
	CheckWindowNamesFirst *bool `yaml:"check_window_names_first"`

	// RequireExactNameMatch requires window names to equal a table key.
	// When false a window name only has to start with one.
	RequireExactNameMatch bool `yaml:"require_exact_name_match"`

	// IconListFormat is one of default, mathematician, chemist.
	IconListFormat string `yaml:"icon_list_format"`

	Icons IconTables `yaml:"icons"`
}

// GetRenumberWorkspaces returns the effective value, defaulting to true.
func (c *Config) GetRenumberWorkspaces() bool {
	if c.RenumberWorkspaces == nil {
		return true
	}
	return *c.RenumberWorkspaces
}

// GetCheckWindowNamesFirst returns the effective value, defaulting to true.
func (c *Config) GetCheckWindowNamesFirst() bool {
	if c.CheckWindowNamesFirst == nil {
		return true
	}
	return *c.CheckWindowNamesFirst
}

// Mode returns the validated icon list format mode.
func (c *Config) Mode() (icon.Mode, error) {
	return icon.ParseMode(c.IconListFormat)
}

// Table builds the frozen, lowercased lookup table from the raw
// mappings. Call once before the event loop; the result is shared
// read-only by every reconciliation pass.
func (c *Config) Table() *icon.Table {
	return icon.NewTable(c.Icons.ByClass, c.Icons.ByName)
}

// Validate checks the parts of the config that can fail fast, most
// importantly the icon list format.
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("icon_list_format: %w", err)
	}
	if c.DefaultIcon == "" {
		return fmt.Errorf("default_icon must not be empty")
	}
	return nil
}
