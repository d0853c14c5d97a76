package reconcile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/1broseidon/wsglyph/internal/icon"
	"github.com/1broseidon/wsglyph/internal/wsname"
)

func staticResolver(icons map[int64]string) Resolver {
	return func(window int64) string {
		if glyph, ok := icons[window]; ok {
			return glyph
		}
		return "*"
	}
}

func defaultOpts() Options {
	return Options{Renumber: true, DefaultIcon: "*", Format: icon.ModeDefault}
}

func TestPlan_FirefoxWorkspaceScenario(t *testing.T) {
	workspaces := []Workspace{
		{Name: "3:web", Output: "eDP-1", Windows: []int64{100}},
	}
	renames, err := Plan(workspaces, staticResolver(map[int64]string{100: ""}), defaultOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renames) != 1 {
		t.Fatalf("expected 1 rename, got %d", len(renames))
	}
	want := Rename{From: "3:web", To: "1:web "}
	if renames[0] != want {
		t.Fatalf("expected %+v, got %+v", want, renames[0])
	}
}

func TestPlan_GapBetweenOutputs(t *testing.T) {
	workspaces := []Workspace{
		{Name: "9:a", Output: "DP-1"},
		{Name: "8:b", Output: "DP-1"},
		{Name: "7:c", Output: "DP-2"},
		{Name: "6:d", Output: "DP-2"},
	}
	renames, err := Plan(workspaces, staticResolver(nil), defaultOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Rename{
		{From: "9:a", To: "1:a"},
		{From: "8:b", To: "2:b"},
		{From: "7:c", To: "4:c"},
		{From: "6:d", To: "5:d"},
	}
	if len(renames) != len(want) {
		t.Fatalf("expected %d renames, got %d: %+v", len(want), len(renames), renames)
	}
	for i := range want {
		if renames[i] != want[i] {
			t.Fatalf("rename %d: expected %+v, got %+v", i, want[i], renames[i])
		}
	}
}

func TestPlan_GapNumberingProperty(t *testing.T) {
	// Arbitrary contiguous output groups: numbers must run 1..s1, then
	// s1+2..s1+1+s2, each transition consuming exactly one extra slot.
	groupSizes := []int{3, 1, 4, 2}
	var workspaces []Workspace
	id := 0
	for g, size := range groupSizes {
		for i := 0; i < size; i++ {
			id++
			workspaces = append(workspaces, Workspace{
				Name:   fmt.Sprintf("%d:w%d", 90+id, id),
				Output: fmt.Sprintf("OUT-%d", g),
			})
		}
	}

	renames, err := Plan(workspaces, staticResolver(nil), defaultOpts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renames) != len(workspaces) {
		t.Fatalf("expected every workspace renamed, got %d of %d", len(renames), len(workspaces))
	}

	idx := 0
	expected := 1
	for g, size := range groupSizes {
		if g > 0 {
			expected++
		}
		for i := 0; i < size; i++ {
			parts := wsname.Parse(renames[idx].To)
			if parts.Num == nil || *parts.Num != expected {
				t.Fatalf("workspace %d: expected number %d, got %v (name %q)", idx, expected, parts.Num, renames[idx].To)
			}
			expected++
			idx++
		}
	}
}

func TestPlan_RenumberDisabledKeepsOriginalNumbers(t *testing.T) {
	workspaces := []Workspace{
		{Name: "9:a", Output: "DP-1", Windows: []int64{1}},
		{Name: "2:b", Output: "DP-2"},
	}
	opts := defaultOpts()
	opts.Renumber = false
	renames, err := Plan(workspaces, staticResolver(map[int64]string{1: "X"}), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renames) != 1 {
		t.Fatalf("expected 1 rename, got %d: %+v", len(renames), renames)
	}
	if renames[0].To != "9:a X" {
		t.Fatalf("expected %q, got %q", "9:a X", renames[0].To)
	}
}

func TestPlan_Idempotent(t *testing.T) {
	workspaces := []Workspace{
		{Name: "3:web", Output: "DP-1", Windows: []int64{1, 2}},
		{Name: "code", Output: "DP-1", Windows: []int64{3}},
		{Name: "5", Output: "DP-2", Windows: []int64{4, 4}},
	}
	resolver := staticResolver(map[int64]string{1: "F", 2: "F", 3: "C", 4: "T"})
	opts := defaultOpts()
	opts.Format = icon.ModeMathematician

	first, err := Plan(workspaces, resolver, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Apply the renames and run the same pass again.
	applied := make(map[string]string, len(first))
	for _, r := range first {
		applied[r.From] = r.To
	}
	for i := range workspaces {
		if to, ok := applied[workspaces[i].Name]; ok {
			workspaces[i].Name = to
		}
	}

	second, err := Plan(workspaces, resolver, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("expected no renames on second pass, got %+v", second)
	}
}

func TestPlan_SingleIconCollapsesList(t *testing.T) {
	workspaces := []Workspace{
		{Name: "1:mix", Output: "DP-1", Windows: []int64{1, 2, 3}},
	}
	opts := defaultOpts()
	opts.SingleIcon = true
	renames, err := Plan(workspaces, staticResolver(map[int64]string{2: "F", 3: "G"}), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(renames) != 1 || renames[0].To != "1:mix F" {
		t.Fatalf("expected single-icon name %q, got %+v", "1:mix F", renames)
	}
}

func TestPlan_InvalidModePropagates(t *testing.T) {
	workspaces := []Workspace{{Name: "1:a", Output: "DP-1"}}
	opts := defaultOpts()
	opts.Format = icon.Mode("alchemist")
	_, err := Plan(workspaces, staticResolver(nil), opts)
	if !errors.Is(err, icon.ErrInvalidFormatMode) {
		t.Fatalf("expected ErrInvalidFormatMode, got %v", err)
	}
}

func TestPlanCleanup_StripsIcons(t *testing.T) {
	workspaces := []Workspace{
		{Name: "2:code 🔥", Output: "DP-1"},
		{Name: "3:web", Output: "DP-1"},
	}
	renames := PlanCleanup(workspaces)
	if len(renames) != 1 {
		t.Fatalf("expected 1 rename, got %d: %+v", len(renames), renames)
	}
	want := Rename{From: "2:code 🔥", To: "2:code"}
	if renames[0] != want {
		t.Fatalf("expected %+v, got %+v", want, renames[0])
	}
}

func TestPlanCleanup_PreservesOriginalNumbers(t *testing.T) {
	workspaces := []Workspace{
		{Name: "7:a X", Output: "DP-1"},
		{Name: "2:b Y", Output: "DP-2"},
	}
	renames := PlanCleanup(workspaces)
	if len(renames) != 2 {
		t.Fatalf("expected 2 renames, got %d", len(renames))
	}
	if renames[0].To != "7:a" || renames[1].To != "2:b" {
		t.Fatalf("cleanup must not renumber: %+v", renames)
	}
}
