package gamepad

import (
	"io"
	"log/slog"
	"sync"

	"github.com/bootpad/bootpad/usb"
)

// DefaultMaxControllers is the session registry capacity. Eight slots
// match realistic multi-controller use.
const DefaultMaxControllers = 8

// Config tunes a Driver. The zero value selects all defaults.
type Config struct {
	// Threshold is the axis deadzone half-width. Zero selects
	// DefaultThreshold.
	Threshold uint8
	// QueueSize is the per-controller key queue capacity. Zero selects
	// DefaultQueueSize.
	QueueSize int
	// MaxControllers caps the number of simultaneously attached
	// controllers. Zero selects DefaultMaxControllers.
	MaxControllers int
	// Map overrides the key mapping. The zero map means DefaultKeyMap.
	Map *KeyMap
}

// ControllerStatus describes one attached controller for diagnostics.
type ControllerStatus struct {
	Name      string
	VendorID  uint16
	ProductID uint16
	Stalled   bool
	Queued    int
}

// Driver is the gamepad input driver context. It owns the session
// registry; there is no package-level device table. All entry points
// are non-blocking and safe for concurrent use: attach/detach arrive
// from the host's hotplug path while the menu loop polls.
type Driver struct {
	mu        sync.Mutex
	dec       Decoder
	queueSize int
	slots     []*session
	next      int // round-robin start slot for popping
	logger    *slog.Logger
}

// New creates a driver. A nil logger discards log output.
func New(cfg Config, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := DefaultKeyMap()
	if cfg.Map != nil {
		m = *cfg.Map
	}
	dec := NewDecoder(m)
	if cfg.Threshold != 0 {
		dec.Threshold = cfg.Threshold
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	maxControllers := cfg.MaxControllers
	if maxControllers <= 0 {
		maxControllers = DefaultMaxControllers
	}
	return &Driver{
		dec:       dec,
		queueSize: queueSize,
		slots:     make([]*session, maxControllers),
		logger:    logger,
	}
}

// Attach offers a newly appeared HID device to the driver. It returns
// true when the driver claims the device: the identity is on the
// allowlist, the interface declares an interrupt IN endpoint, and a
// registry slot is free. Everything else is silently rejected.
func (d *Driver) Attach(dev usb.Device, config, iface int) bool {
	desc := dev.Desc()
	name, ok := Supported(desc.VendorID, desc.ProductID)
	if !ok {
		return false
	}

	ep, ok := findInterruptIn(dev.Endpoints(config, iface))
	if !ok {
		d.logger.Debug("controller has no interrupt IN endpoint",
			"controller", name,
			"vendor", desc.VendorID, "product", desc.ProductID)
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	slot := -1
	for i, s := range d.slots {
		if s != nil && s.dev == dev {
			// Already claimed; one session per device handle.
			return false
		}
		if s == nil && slot < 0 {
			slot = i
		}
	}
	if slot < 0 {
		d.logger.Warn("controller registry full, rejecting",
			"controller", name)
		return false
	}

	s := newSession(dev, name, ep, d.queueSize)
	s.submitRead(d.logger)
	d.slots[slot] = s

	d.logger.Info("controller attached",
		"controller", name,
		"vendor", desc.VendorID, "product", desc.ProductID,
		"endpoint", ep.Address, "slot", slot)
	return true
}

// Detach releases the session for a disappeared device, cancelling any
// in-flight transfer before the slot is freed. Unknown handles are a
// silent no-op; the host reports every HID device, claimed or not.
func (d *Driver) Detach(dev usb.Device, config, iface int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.slots {
		if s != nil && s.dev == dev {
			s.close()
			d.slots[i] = nil
			d.logger.Info("controller detached", "controller", s.name, "slot", i)
			return
		}
	}
}

// pollAll runs one poll cycle over every session. Caller holds d.mu.
func (d *Driver) pollAll() {
	for _, s := range d.slots {
		if s != nil {
			s.poll(d.dec, d.logger)
		}
	}
}

// GetKey runs one poll cycle and returns the next queued key, or
// KeyNone when no input is pending. It never blocks; the menu loop
// calls it on every iteration regardless of device state. Sessions are
// drained round-robin so one controller cannot starve another.
func (d *Driver) GetKey() Key {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pollAll()
	n := len(d.slots)
	for i := 0; i < n; i++ {
		slot := (d.next + i) % n
		s := d.slots[slot]
		if s == nil {
			continue
		}
		if k, ok := s.queue.Pop(); ok {
			d.next = (slot + 1) % n
			return k
		}
	}
	return KeyNone
}

// HasKey reports whether GetKey would return a key, without consuming
// it. It runs a poll cycle so a press that just completed is visible.
func (d *Driver) HasKey() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pollAll()
	for _, s := range d.slots {
		if s != nil && !s.queue.Empty() {
			return true
		}
	}
	return false
}

// Status returns the currently attached controller identities, in slot
// order, for the connected-controllers diagnostic.
func (d *Driver) Status() []ControllerStatus {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []ControllerStatus
	for _, s := range d.slots {
		if s == nil {
			continue
		}
		out = append(out, ControllerStatus{
			Name:      s.name,
			VendorID:  s.desc.VendorID,
			ProductID: s.desc.ProductID,
			Stalled:   s.stalled,
			Queued:    s.queue.Len(),
		})
	}
	return out
}

// Close force-detaches every session. Each in-flight transfer is
// cancelled before its slot is released.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.slots {
		if s != nil {
			s.close()
			d.slots[i] = nil
		}
	}
}

func findInterruptIn(eps []usb.EndpointDesc) (usb.EndpointDesc, bool) {
	for _, ep := range eps {
		if ep.IsIn() && ep.TransferType() == usb.TransferInterrupt {
			return ep, true
		}
	}
	return usb.EndpointDesc{}, false
}
