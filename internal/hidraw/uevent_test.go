package hidraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUevent(t *testing.T) {
	data := "DRIVER=hid-generic\nHID_ID=0003:00000583:00002060\nHID_PHYS=usb-0000:00:14.0-2/input0\nHID_NAME=USB,2-axis 8-button gamepad\n"

	info, err := parseUevent(data)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0003), info.Bus)
	assert.Equal(t, uint16(0x0583), info.VendorID)
	assert.Equal(t, uint16(0x2060), info.ProductID)
	assert.Equal(t, "USB,2-axis 8-button gamepad", info.Name)
	assert.True(t, info.IsUSB())
}

func TestParseUeventBluetooth(t *testing.T) {
	info, err := parseUevent("HID_ID=0005:00002dc8:00009018\nHID_NAME=8BitDo SN30\n")
	require.NoError(t, err)
	assert.False(t, info.IsUSB())
}

func TestParseUeventErrors(t *testing.T) {
	cases := map[string]string{
		"no id":        "DRIVER=hid-generic\nHID_NAME=pad\n",
		"malformed id": "HID_ID=0003:nope:0001\n",
		"short id":     "HID_ID=0003:0001\n",
		"empty":        "",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseUevent(data)
			assert.Error(t, err)
		})
	}
}

func TestIsHidrawNode(t *testing.T) {
	assert.True(t, isHidrawNode("hidraw0"))
	assert.True(t, isHidrawNode("hidraw12"))
	assert.False(t, isHidrawNode("hidraw"))
	assert.False(t, isHidrawNode("hidraw0a"))
	assert.False(t, isHidrawNode("input0"))
	assert.False(t, isHidrawNode("ttyS0"))
}
