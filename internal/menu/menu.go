// Package menu is a minimal text-mode boot-style menu driven by the
// gamepad driver. It is the host loop the driver was built for: a busy
// poll with a short delay, never blocking on input.
package menu

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bootpad/bootpad/gamepad"
)

// Action is what a key press asks the menu host to do beyond moving the
// selection.
type Action uint8

const (
	ActionNone Action = iota
	ActionAccept
	ActionCancel
	ActionEdit
	ActionCommand
)

// Model holds the pure menu state. It knows nothing about rendering or
// timing, which keeps the navigation rules testable.
type Model struct {
	Entries  []string
	Selected int
	PageSize int
}

// Apply advances the model by one key and returns the resulting action.
// Up/down wrap around, paging clamps at the ends.
func (m *Model) Apply(k gamepad.Key) Action {
	n := len(m.Entries)
	if n == 0 {
		return ActionNone
	}
	page := m.PageSize
	if page <= 0 {
		page = 5
	}
	switch k {
	case gamepad.KeyUp:
		m.Selected = (m.Selected - 1 + n) % n
	case gamepad.KeyDown:
		m.Selected = (m.Selected + 1) % n
	case gamepad.KeyPageUp:
		m.Selected = max(0, m.Selected-page)
	case gamepad.KeyPageDown:
		m.Selected = min(n-1, m.Selected+page)
	case gamepad.KeyActivate:
		return ActionAccept
	case gamepad.KeyCancel:
		return ActionCancel
	case gamepad.KeyEdit:
		return ActionEdit
	case gamepad.KeyCommand:
		return ActionCommand
	}
	return ActionNone
}

// Options configures a menu run.
type Options struct {
	Entries      []string
	PollInterval time.Duration // delay between driver polls
	Timeout      time.Duration // auto-accept delay; 0 disables
	Out          io.Writer
	Color        bool // ANSI rendering
}

// Run drives the menu until an entry is accepted, the menu is
// cancelled, or ctx ends. It returns the accepted entry index, or -1 on
// cancel. The countdown stops at the first key press, like a boot menu
// interrupted by the user.
func Run(ctx context.Context, drv *gamepad.Driver, opts Options) (int, error) {
	if len(opts.Entries) == 0 {
		return -1, fmt.Errorf("menu: no entries")
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}

	m := &Model{Entries: opts.Entries, PageSize: 5}
	deadline := time.Time{}
	if opts.Timeout > 0 {
		deadline = time.Now().Add(opts.Timeout)
	}

	status := ""
	render(opts.Out, m, deadline, status, opts.Color)
	lastDraw := time.Now()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-ticker.C:
		}

		dirty := false
		for k := drv.GetKey(); k != gamepad.KeyNone; k = drv.GetKey() {
			if !deadline.IsZero() {
				deadline = time.Time{}
				dirty = true
			}
			switch m.Apply(k) {
			case ActionAccept:
				return m.Selected, nil
			case ActionCancel:
				return -1, nil
			case ActionEdit:
				status = "edit mode is up to the host menu"
			case ActionCommand:
				status = "command mode is up to the host menu"
			}
			dirty = true
		}

		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return m.Selected, nil
		}

		// Redraw on changes, and once a second while counting down.
		if dirty || (!deadline.IsZero() && time.Since(lastDraw) >= time.Second) {
			render(opts.Out, m, deadline, status, opts.Color)
			lastDraw = time.Now()
		}
	}
}

func render(w io.Writer, m *Model, deadline time.Time, status string, color bool) {
	if w == nil {
		return
	}
	var b strings.Builder
	if color {
		b.WriteString("\033[2J\033[H")
	}
	b.WriteString("bootpad menu\n\n")
	for i, e := range m.Entries {
		switch {
		case i == m.Selected && color:
			fmt.Fprintf(&b, "  \033[7m %s \033[0m\n", e)
		case i == m.Selected:
			fmt.Fprintf(&b, "> %s\n", e)
		default:
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	b.WriteString("\n")
	if !deadline.IsZero() {
		fmt.Fprintf(&b, "booting highlighted entry in %ds\n", int(time.Until(deadline).Seconds())+1)
	}
	if status != "" {
		fmt.Fprintf(&b, "%s\n", status)
	}
	_, _ = io.WriteString(w, b.String())
}
