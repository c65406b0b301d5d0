//go:build !linux

package hidraw

import (
	"errors"
	"log/slog"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/usb"
)

var errUnsupported = errors.New("hidraw: backend requires Linux")

// Device is unavailable on this platform; every Open fails, so no
// method is ever reached on a live value.
type Device struct{}

// Open always fails on non-Linux platforms.
func Open(path string) (*Device, error) {
	return nil, errUnsupported
}

func (d *Device) Path() string { return "" }

func (d *Device) Desc() usb.DeviceDesc { return usb.DeviceDesc{} }

func (d *Device) Endpoints(config, iface int) []usb.EndpointDesc { return nil }

func (d *Device) SubmitRead(ep usb.EndpointDesc, buf []byte) (usb.Transfer, error) {
	return nil, errUnsupported
}

func (d *Device) Close() error { return nil }

// Monitor is unavailable on this platform.
type Monitor struct{}

func NewMonitor(drv *gamepad.Driver, logger *slog.Logger) *Monitor {
	return &Monitor{}
}

func (m *Monitor) Start() error {
	return errUnsupported
}

func (m *Monitor) Close() {}
