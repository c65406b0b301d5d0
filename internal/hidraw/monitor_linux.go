//go:build linux

package hidraw

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bootpad/bootpad/gamepad"
)

const devDir = "/dev"

// Monitor feeds hidraw hotplug into a gamepad driver: an initial scan of
// /dev plus an fsnotify watch for nodes appearing and disappearing.
// Devices the driver declines to claim are closed again immediately.
type Monitor struct {
	drv    *gamepad.Driver
	logger *slog.Logger

	watcher *fsnotify.Watcher
	mu      sync.Mutex
	devices map[string]*Device
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewMonitor creates a monitor bound to drv. Call Start to begin
// watching and Close to detach everything.
func NewMonitor(drv *gamepad.Driver, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Monitor{
		drv:     drv,
		logger:  logger,
		devices: make(map[string]*Device),
		done:    make(chan struct{}),
	}
}

// Start scans the existing hidraw nodes and begins watching /dev. The
// initial scan completes before Start returns, so already-connected
// controllers are attached when it does.
func (m *Monitor) Start() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(devDir); err != nil {
		w.Close()
		return err
	}
	m.watcher = w

	paths, _ := filepath.Glob(filepath.Join(devDir, "hidraw*"))
	for _, p := range paths {
		if isHidrawNode(filepath.Base(p)) {
			m.tryAttach(p)
		}
	}

	m.wg.Add(1)
	go m.loop()
	return nil
}

func (m *Monitor) loop() {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if !isHidrawNode(filepath.Base(ev.Name)) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Create):
				// udev may still be fixing up permissions when the
				// node appears.
				time.Sleep(50 * time.Millisecond)
				m.tryAttach(ev.Name)
			case ev.Has(fsnotify.Remove):
				m.detach(ev.Name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.logger.Warn("hidraw watch error", "error", err)
		}
	}
}

func (m *Monitor) tryAttach(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.devices[path]; ok {
		return
	}
	dev, err := Open(path)
	if err != nil {
		m.logger.Debug("skipping hidraw node", "path", path, "error", err)
		return
	}
	if !m.drv.Attach(dev, 0, 0) {
		_ = dev.Close()
		return
	}
	m.devices[path] = dev
}

func (m *Monitor) detach(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, ok := m.devices[path]
	if !ok {
		return
	}
	m.drv.Detach(dev, 0, 0)
	_ = dev.Close()
	delete(m.devices, path)
}

// Close stops watching and detaches every device the monitor opened.
func (m *Monitor) Close() {
	close(m.done)
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	for path, dev := range m.devices {
		m.drv.Detach(dev, 0, 0)
		_ = dev.Close()
		delete(m.devices, path)
	}
}
