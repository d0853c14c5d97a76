// Package i3 talks to the i3 (or sway) IPC socket: tree snapshots,
// rename commands, and the event subscription that drives
// reconciliation passes.
package i3

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.i3wm.org/i3/v4"

	"github.com/1broseidon/wsglyph/internal/reconcile"
)

// Client wraps the i3 IPC connection helpers. The underlying library
// manages its own socket per call, so Client itself carries no
// connection state.
type Client struct {
	logger *slog.Logger
}

// NewClient creates an i3 IPC client.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{logger: logger}
}

// Snapshot returns the current workspaces in i3's reply order, each
// with its output assignment and leaf windows in layout order. i3
// groups the workspace reply by output, which is what the gap numbering
// in the reconciler relies on.
func (c *Client) Snapshot() ([]reconcile.Workspace, error) {
	infos, err := i3.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}
	tree, err := i3.GetTree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}

	byName := make(map[string]*i3.Node)
	collectWorkspaceNodes(tree.Root, byName)

	workspaces := make([]reconcile.Workspace, 0, len(infos))
	for _, info := range infos {
		ws := reconcile.Workspace{Name: info.Name, Output: info.Output}
		if node, ok := byName[info.Name]; ok {
			ws.Windows = leafWindows(node, nil)
		} else {
			c.logger.Warn("workspace missing from tree", "workspace", info.Name)
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

// Rename issues `rename workspace "from" to "to"`.
func (c *Client) Rename(from, to string) error {
	cmd := fmt.Sprintf("rename workspace \"%s\" to \"%s\"", escapeName(from), escapeName(to))
	if _, err := i3.RunCommand(cmd); err != nil {
		return fmt.Errorf("rename %q to %q: %w", from, to, err)
	}
	return nil
}

// Events subscribes to window and workspace events and delivers a
// trigger for each change that can affect workspace names: window
// {new, close, move} and workspace moves between outputs. Triggers
// coalesce when a pass is still running. The channel closes when ctx
// is cancelled or the subscription drops.
func (c *Client) Events(ctx context.Context) <-chan struct{} {
	triggers := make(chan struct{}, 1)
	recv := i3.Subscribe(i3.WindowEventType, i3.WorkspaceEventType)

	go func() {
		<-ctx.Done()
		recv.Close()
	}()

	go func() {
		defer close(triggers)
		for recv.Next() {
			if !relevant(recv.Event()) {
				continue
			}
			select {
			case triggers <- struct{}{}:
			default:
				// A trigger is already pending; the next pass
				// recomputes everything anyway.
			}
		}
		if err := recv.Close(); err != nil && ctx.Err() == nil {
			c.logger.Error("event subscription closed", "error", err)
		}
	}()
	return triggers
}

func relevant(ev i3.Event) bool {
	switch ev := ev.(type) {
	case *i3.WindowEvent:
		switch ev.Change {
		case "new", "close", "move":
			return true
		}
	case *i3.WorkspaceEvent:
		return ev.Change == "move"
	}
	return false
}

func escapeName(name string) string {
	return strings.ReplaceAll(name, `"`, `\"`)
}

func collectWorkspaceNodes(node *i3.Node, out map[string]*i3.Node) {
	if node == nil {
		return
	}
	if node.Type == i3.WorkspaceNode {
		out[node.Name] = node
		return
	}
	for _, child := range node.Nodes {
		collectWorkspaceNodes(child, out)
	}
}

// leafWindows collects the X window IDs of leaf containers under node,
// tiled children first, floating after, both in i3's order.
func leafWindows(node *i3.Node, acc []int64) []int64 {
	children := make([]*i3.Node, 0, len(node.Nodes)+len(node.FloatingNodes))
	children = append(children, node.Nodes...)
	children = append(children, node.FloatingNodes...)
	for _, child := range children {
		if len(child.Nodes) == 0 && len(child.FloatingNodes) == 0 {
			acc = append(acc, child.Window)
			continue
		}
		acc = leafWindows(child, acc)
	}
	return acc
}
