// Package hidraw is the Linux host backend for the gamepad driver. It
// presents /dev/hidraw character devices through the usb.Device
// contract: non-blocking reads stand in for asynchronous interrupt
// transfers, and a filesystem watcher on /dev supplies attach/detach.
package hidraw

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// busUSB is the HID bus number for USB-attached devices in the kernel's
// HID_ID field.
const busUSB = 0x03

// DeviceInfo is the identity read from a hidraw node's sysfs uevent.
type DeviceInfo struct {
	Bus       uint16
	VendorID  uint16
	ProductID uint16
	Name      string
}

// IsUSB reports whether the underlying HID device sits on the USB bus.
func (i DeviceInfo) IsUSB() bool { return i.Bus == busUSB }

// parseUevent extracts the HID identity from the contents of
// /sys/class/hidraw/<node>/device/uevent, which looks like:
//
//	DRIVER=hid-generic
//	HID_ID=0003:00000583:00002060
//	HID_NAME=USB,2-axis 8-button gamepad
func parseUevent(data string) (DeviceInfo, error) {
	var info DeviceInfo
	var haveID bool
	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		switch key {
		case "HID_ID":
			parts := strings.Split(value, ":")
			if len(parts) != 3 {
				return info, fmt.Errorf("hidraw: malformed HID_ID %q", value)
			}
			bus, err := strconv.ParseUint(parts[0], 16, 16)
			if err != nil {
				return info, fmt.Errorf("hidraw: malformed HID_ID bus %q", parts[0])
			}
			vendor, err := strconv.ParseUint(parts[1], 16, 32)
			if err != nil {
				return info, fmt.Errorf("hidraw: malformed HID_ID vendor %q", parts[1])
			}
			product, err := strconv.ParseUint(parts[2], 16, 32)
			if err != nil {
				return info, fmt.Errorf("hidraw: malformed HID_ID product %q", parts[2])
			}
			info.Bus = uint16(bus)
			info.VendorID = uint16(vendor)
			info.ProductID = uint16(product)
			haveID = true
		case "HID_NAME":
			info.Name = value
		}
	}
	if !haveID {
		return info, fmt.Errorf("hidraw: uevent has no HID_ID")
	}
	return info, nil
}

var hidrawName = regexp.MustCompile(`^hidraw[0-9]+$`)

// isHidrawNode reports whether base is a hidraw device node name.
func isHidrawNode(base string) bool {
	return hidrawName.MatchString(base)
}
