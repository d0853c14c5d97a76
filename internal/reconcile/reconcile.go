// Package reconcile computes workspace rename commands from a
// window-manager snapshot. Planning is pure: the same snapshot and
// options always produce the same commands, and a snapshot whose names
// are already correct produces none.
package reconcile

import (
	"github.com/1broseidon/wsglyph/internal/icon"
	"github.com/1broseidon/wsglyph/internal/wsname"
)

// Workspace is one workspace from a tree snapshot: its current display
// name, the output it is on, and its leaf windows in layout order.
type Workspace struct {
	Name    string
	Output  string
	Windows []int64
}

// Rename maps a workspace's current name to its computed name.
type Rename struct {
	From string
	To   string
}

// Resolver derives the display icon for a leaf window.
type Resolver func(window int64) string

// Options control numbering and icon rendering for a pass.
type Options struct {
	// Renumber assigns ascending numbers with a one-slot gap at each
	// output transition. When false the parsed original number is kept.
	Renumber bool
	// SingleIcon collapses each workspace's icon list to its first
	// non-default icon before formatting.
	SingleIcon bool
	// DefaultIcon is the glyph unresolved windows map to; SingleIcon
	// needs it to tell real icons apart from fallbacks.
	DefaultIcon string
	Format      icon.Mode
}

// Plan walks the workspaces in snapshot order and returns a rename for
// every workspace whose computed name differs from its current one.
// Workspaces on the same output are assumed contiguous in the snapshot;
// each transition to a new output skips one number so a fresh workspace
// can later be created in the gap.
func Plan(workspaces []Workspace, resolve Resolver, opts Options) ([]Rename, error) {
	var renames []Rename
	n := 1
	prevOutput := ""
	seenOutput := false

	for _, ws := range workspaces {
		parts := wsname.Parse(ws.Name)

		icons := make([]string, 0, len(ws.Windows))
		for _, win := range ws.Windows {
			icons = append(icons, resolve(win))
		}
		if opts.SingleIcon {
			icons = icon.SingleIcon(icons, opts.DefaultIcon)
		}
		formatted, err := icon.Format(icons, opts.Format)
		if err != nil {
			return nil, err
		}

		if seenOutput && ws.Output != prevOutput {
			n++
		}
		prevOutput = ws.Output
		seenOutput = true

		num := parts.Num
		if opts.Renumber {
			num = wsname.Num(n)
		}
		n++

		newName := wsname.Construct(wsname.Parts{
			Num:       num,
			Shortname: parts.Shortname,
			Icons:     formatted,
		})
		if newName == ws.Name {
			continue
		}
		renames = append(renames, Rename{From: ws.Name, To: newName})
	}
	return renames, nil
}

// PlanCleanup strips icon annotations from every workspace, keeping the
// original numbers and shortnames. This is the terminal pass run on
// shutdown and it never fails.
func PlanCleanup(workspaces []Workspace) []Rename {
	var renames []Rename
	for _, ws := range workspaces {
		parts := wsname.Parse(ws.Name)
		newName := wsname.Construct(wsname.Parts{
			Num:       parts.Num,
			Shortname: parts.Shortname,
		})
		if newName == ws.Name {
			continue
		}
		renames = append(renames, Rename{From: ws.Name, To: newName})
	}
	return renames
}
