// Package daemon runs the event loop: it reacts to window-manager
// events by recomputing every workspace name and issuing the renames
// that changed, and strips icons from all names on shutdown.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/1broseidon/wsglyph/internal/ipc"
	"github.com/1broseidon/wsglyph/internal/reconcile"
)

// WM is the window-manager collaborator: tree snapshots, rename
// commands, and the event stream that triggers passes.
type WM interface {
	Snapshot() ([]reconcile.Workspace, error)
	Rename(from, to string) error
	// Events delivers one trigger per relevant change and closes when
	// ctx is cancelled or the subscription drops.
	Events(ctx context.Context) <-chan struct{}
}

// Autonamer drives reconciliation passes over the window manager.
type Autonamer struct {
	wm      WM
	resolve reconcile.Resolver
	opts    reconcile.Options
	logger  *slog.Logger

	// mu serializes passes: events run on the loop goroutine but the
	// control socket can trigger a pass from its own.
	mu        sync.Mutex
	startTime time.Time
	passes    int64
	renames   int64
}

// New creates an Autonamer. The resolver must be backed by a table
// that was frozen before the first pass.
func New(wm WM, resolve reconcile.Resolver, opts reconcile.Options, logger *slog.Logger) *Autonamer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Autonamer{
		wm:        wm,
		resolve:   resolve,
		opts:      opts,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Run performs an initial pass, then reconciles on every event until
// ctx is cancelled. Cancellation runs the cleanup pass (best effort)
// before returning.
func (a *Autonamer) Run(ctx context.Context) error {
	if err := a.RenameNow(); err != nil {
		// A failed initial pass is not fatal; the next event retries.
		a.logger.Error("initial pass failed", "error", err)
	}

	triggers := a.wm.Events(ctx)
	for range triggers {
		if err := a.RenameNow(); err != nil {
			a.logger.Error("pass failed", "error", err)
		}
	}

	if ctx.Err() == nil {
		return fmt.Errorf("event subscription closed unexpectedly")
	}

	a.logger.Info("shutting down, stripping icons from workspace names")
	if err := a.Clean(); err != nil {
		a.logger.Error("cleanup pass failed", "error", err)
	}
	return nil
}

// RenameNow runs one full reconciliation pass. Individual rename
// failures are logged and do not abort the pass.
func (a *Autonamer) RenameNow() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	workspaces, err := a.wm.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}
	renames, err := reconcile.Plan(workspaces, a.resolve, a.opts)
	if err != nil {
		return err
	}
	a.passes++
	a.issue(renames)
	return nil
}

// Clean strips icon annotations from every workspace name. Best
// effort: it never panics and rename failures only log, so the process
// can always exit.
func (a *Autonamer) Clean() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("cleanup panic recovered", "error", r)
		}
	}()

	workspaces, err := a.wm.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}
	a.issue(reconcile.PlanCleanup(workspaces))
	return nil
}

// Status implements the control-socket surface.
func (a *Autonamer) Status() ipc.StatusData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ipc.StatusData{
		DaemonRunning:  true,
		UptimeSeconds:  int64(time.Since(a.startTime).Seconds()),
		Passes:         a.passes,
		RenamesIssued:  a.renames,
		IconListFormat: string(a.opts.Format),
		Renumbering:    a.opts.Renumber,
	}
}

func (a *Autonamer) issue(renames []reconcile.Rename) {
	for _, r := range renames {
		if err := a.wm.Rename(r.From, r.To); err != nil {
			a.logger.Error("rename failed", "from", r.From, "to", r.To, "error", err)
			continue
		}
		a.renames++
		a.logger.Debug("renamed workspace", "from", r.From, "to", r.To)
	}
}
