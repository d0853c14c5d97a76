// Package x11 answers window-property queries (WM_CLASS, WM_NAME) over
// a shared X connection. It is the metadata source behind icon
// resolution; i3 only hands us the X window ID of each leaf.
package x11

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Client wraps an X11 connection for property queries. Safe for use
// from a single event loop; it keeps no per-query state.
type Client struct {
	xu     *xgbutil.XUtil
	logger *slog.Logger
}

// NewClient connects to the X server named by DISPLAY.
func NewClient(logger *slog.Logger) (*Client, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{xu: xu, logger: logger}, nil
}

// Close disconnects from the X server.
func (c *Client) Close() {
	c.xu.Conn().Close()
}

// Classes returns the window's WM_CLASS values as [instance, class],
// matching xprop's output order. Returns nil for windows without the
// property (sway/Wayland-native clients have no X window at all).
func (c *Client) Classes(window int64) []string {
	if window <= 0 {
		return nil
	}
	class, err := icccm.WmClassGet(c.xu, xproto.Window(window))
	if err != nil {
		c.logger.Debug("WM_CLASS query failed", "window", window, "error", err)
		return nil
	}
	return []string{class.Instance, class.Class}
}

// Names returns the window's name values, preferring _NET_WM_NAME over
// the legacy ICCCM WM_NAME. Returns nil when neither is set.
func (c *Client) Names(window int64) []string {
	if window <= 0 {
		return nil
	}
	var names []string
	if name, err := ewmh.WmNameGet(c.xu, xproto.Window(window)); err == nil && name != "" {
		names = append(names, name)
	}
	if name, err := icccm.WmNameGet(c.xu, xproto.Window(window)); err == nil && name != "" {
		names = append(names, name)
	}
	if len(names) == 0 {
		c.logger.Debug("WM_NAME query failed", "window", window)
	}
	return names
}
