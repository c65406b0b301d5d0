//go:build linux

package hidraw

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/usb"
)

// Device adapts one /dev/hidraw node to the usb.Device contract.
//
// hidraw has no visible endpoint table; the kernel already bound the
// interrupt IN endpoint for us, so Endpoints synthesizes the single
// descriptor the driver will look for.
type Device struct {
	fd   int
	path string
	desc usb.DeviceDesc
}

// Open opens a hidraw node non-blocking and reads its identity from
// sysfs. Non-USB HID devices are rejected.
func Open(path string) (*Device, error) {
	info, err := readInfo(path)
	if err != nil {
		return nil, err
	}
	if !info.IsUSB() {
		return nil, fmt.Errorf("hidraw: %s is not a USB device", path)
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("hidraw: open %s: %w", path, err)
	}
	return &Device{
		fd:   fd,
		path: path,
		desc: usb.DeviceDesc{
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.Name,
		},
	}, nil
}

func readInfo(devPath string) (DeviceInfo, error) {
	uevent := filepath.Join("/sys/class/hidraw", filepath.Base(devPath), "device", "uevent")
	data, err := os.ReadFile(uevent)
	if err != nil {
		return DeviceInfo{}, fmt.Errorf("hidraw: %w", err)
	}
	return parseUevent(string(data))
}

// Path returns the device node path.
func (d *Device) Path() string { return d.path }

func (d *Device) Desc() usb.DeviceDesc { return d.desc }

func (d *Device) Endpoints(config, iface int) []usb.EndpointDesc {
	return []usb.EndpointDesc{{
		Address:       0x81,
		Attributes:    uint8(usb.TransferInterrupt),
		MaxPacketSize: gamepad.ReportSize,
		Interval:      10,
	}}
}

func (d *Device) SubmitRead(ep usb.EndpointDesc, buf []byte) (usb.Transfer, error) {
	return &transfer{dev: d, buf: buf}, nil
}

// Close releases the file descriptor. The caller must have detached the
// device from the driver first so no transfer still points at it.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// transfer performs the read lazily at poll time, which is exactly what
// a non-blocking hidraw fd gives us: EAGAIN while the device has no new
// report, data once it does.
type transfer struct {
	dev  *Device
	buf  []byte
	done bool
}

func (t *transfer) Poll() (usb.TransferStatus, int) {
	if t.done {
		return usb.TransferFailed, 0
	}
	n, err := unix.Read(t.dev.fd, t.buf)
	switch {
	case err == unix.EAGAIN:
		return usb.TransferPending, 0
	case err != nil:
		t.done = true
		return usb.TransferFailed, 0
	default:
		t.done = true
		return usb.TransferCompleted, n
	}
}

func (t *transfer) Cancel() {
	t.done = true
}
