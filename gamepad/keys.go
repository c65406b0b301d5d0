package gamepad

// Key is a logical input event produced by the driver. The menu layer
// consumes keys; it never sees raw reports.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyActivate // confirm / boot the selected entry
	KeyCancel   // back out / escape
	KeyEdit     // enter edit mode
	KeyCommand  // enter command mode
	KeyPageUp
	KeyPageDown
)

var keyNames = map[Key]string{
	KeyNone:     "none",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyActivate: "activate",
	KeyCancel:   "cancel",
	KeyEdit:     "edit",
	KeyCommand:  "command",
	KeyPageUp:   "page-up",
	KeyPageDown: "page-down",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "invalid"
}

// ParseKey resolves a key name as used in mapping configuration. The
// second result is false for unknown names.
func ParseKey(name string) (Key, bool) {
	for k, s := range keyNames {
		if s == name {
			return k, true
		}
	}
	return KeyNone, false
}

// Button is a bit position in the report's button byte. The positions
// below are the de facto layout shared by the supported SNES-style pads.
type Button uint8

const (
	ButtonX Button = iota // top
	ButtonA               // right
	ButtonB               // bottom
	ButtonY               // left
	ButtonL               // left shoulder
	ButtonR               // right shoulder
	ButtonSelect
	ButtonStart

	NumButtons = 8
)

var buttonNames = [NumButtons]string{"x", "a", "b", "y", "l", "r", "select", "start"}

func (b Button) String() string {
	if b < NumButtons {
		return buttonNames[b]
	}
	return "invalid"
}

// Mask returns the report bitmask for the button.
func (b Button) Mask() uint8 { return 1 << b }

// ParseButton resolves a button name as used in mapping configuration.
func ParseButton(name string) (Button, bool) {
	for i, s := range buttonNames {
		if s == name {
			return Button(i), true
		}
	}
	return 0, false
}

// KeyMap assigns a logical key to each direction and button. Unassigned
// entries hold KeyNone and emit nothing.
type KeyMap struct {
	Up, Down, Left, Right Key
	Buttons               [NumButtons]Key
}

// DefaultKeyMap mirrors the classic mapping: A or Start confirms, B or X
// cancels, Select edits, Y opens the command line, shoulders page.
func DefaultKeyMap() KeyMap {
	m := KeyMap{
		Up:    KeyUp,
		Down:  KeyDown,
		Left:  KeyLeft,
		Right: KeyRight,
	}
	m.Buttons[ButtonA] = KeyActivate
	m.Buttons[ButtonStart] = KeyActivate
	m.Buttons[ButtonB] = KeyCancel
	m.Buttons[ButtonX] = KeyCancel
	m.Buttons[ButtonSelect] = KeyEdit
	m.Buttons[ButtonY] = KeyCommand
	m.Buttons[ButtonL] = KeyPageUp
	m.Buttons[ButtonR] = KeyPageDown
	return m
}
