// Package usb defines the host-side USB contract the gamepad driver is
// built against: descriptor values with named accessors and the
// asynchronous transfer primitives provided by the host environment.
package usb

// TransferType indicates the type of a USB endpoint transfer.
type TransferType uint8

// Transfer type constants (low two bits of bmAttributes).
const (
	TransferControl     TransferType = 0
	TransferIsochronous TransferType = 1
	TransferBulk        TransferType = 2
	TransferInterrupt   TransferType = 3
)

func (t TransferType) String() string {
	switch t {
	case TransferControl:
		return "control"
	case TransferIsochronous:
		return "isochronous"
	case TransferBulk:
		return "bulk"
	case TransferInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// DeviceDesc carries the identity fields of a device descriptor that the
// driver needs for allowlist matching and diagnostics.
type DeviceDesc struct {
	VendorID  uint16
	ProductID uint16
	Product   string
}

// EndpointDesc mirrors the standard endpoint descriptor fields.
type EndpointDesc struct {
	Address       uint8  // bEndpointAddress including direction bit
	Attributes    uint8  // bmAttributes, transfer type in low two bits
	MaxPacketSize uint16 // wMaxPacketSize
	Interval      uint8  // bInterval
}

// Number returns the endpoint number (0-15).
func (e EndpointDesc) Number() uint8 {
	return e.Address & 0x0F
}

// IsIn reports whether this is an IN endpoint (device to host).
func (e EndpointDesc) IsIn() bool {
	return e.Address&0x80 != 0
}

// TransferType returns the endpoint's transfer type.
func (e EndpointDesc) TransferType() TransferType {
	return TransferType(e.Attributes & 0x03)
}
