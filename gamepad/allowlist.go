package gamepad

// ControllerInfo identifies one supported controller model.
type ControllerInfo struct {
	VendorID  uint16
	ProductID uint16
	Name      string
}

// supportedControllers is the static allowlist of gamepads known to speak
// the 8-byte report layout this driver decodes. Find a controller's IDs
// with: lsusb | grep -i game
var supportedControllers = []ControllerInfo{
	{0x0810, 0xe501, "Generic Chinese SNES"},
	{0x0079, 0x0011, "DragonRise Generic"},
	{0x0583, 0x2060, "iBuffalo SNES"},
	{0x2dc8, 0x9018, "8BitDo SN30"},
	{0x12bd, 0xd015, "Generic 2-pack SNES"},
	{0x1a34, 0x0802, "USB Gamepad"},
}

// Supported reports whether the given vendor/product pair is a recognized
// controller and, if so, its display name. Unknown pairs are simply not
// ours; most HID devices on a bus are not gamepads.
func Supported(vendorID, productID uint16) (string, bool) {
	for _, c := range supportedControllers {
		if c.VendorID == vendorID && c.ProductID == productID {
			return c.Name, true
		}
	}
	return "", false
}

// Controllers returns a copy of the allowlist for diagnostics output.
func Controllers() []ControllerInfo {
	out := make([]ControllerInfo, len(supportedControllers))
	copy(out, supportedControllers)
	return out
}
