package gamepad

// Decoder turns pairs of consecutive reports into logical key events.
// It is pure: the same report pair always yields the same keys.
type Decoder struct {
	Center    uint8
	Threshold uint8
	Map       KeyMap
}

// NewDecoder returns a decoder with the standard axis scale and the
// given key map.
func NewDecoder(m KeyMap) Decoder {
	return Decoder{Center: AxisCenter, Threshold: DefaultThreshold, Map: m}
}

// Zone classifies an axis sample against the decoder's deadzone. Values
// strictly below center-threshold are low, strictly above
// center+threshold are high, everything between is neutral.
func (d Decoder) Zone(v uint8) AxisZone {
	switch {
	case int(v) < int(d.Center)-int(d.Threshold):
		return ZoneLow
	case int(v) > int(d.Center)+int(d.Threshold):
		return ZoneHigh
	default:
		return ZoneNeutral
	}
}

// Detect returns the keys produced by the transition from prev to cur,
// press edges only: a direction fires when its axis newly enters the
// zone, a button when its bit newly sets. Holding a pose emits nothing,
// releases emit nothing. Order is fixed: vertical axis, horizontal axis,
// then buttons by bit position.
func (d Decoder) Detect(prev, cur Report) []Key {
	var keys []Key
	emit := func(k Key) {
		if k != KeyNone {
			keys = append(keys, k)
		}
	}

	if z := d.Zone(cur.Y()); z != d.Zone(prev.Y()) {
		switch z {
		case ZoneLow:
			emit(d.Map.Up)
		case ZoneHigh:
			emit(d.Map.Down)
		}
	}
	if z := d.Zone(cur.X()); z != d.Zone(prev.X()) {
		switch z {
		case ZoneLow:
			emit(d.Map.Left)
		case ZoneHigh:
			emit(d.Map.Right)
		}
	}

	pressed := cur.Buttons() &^ prev.Buttons()
	for b := Button(0); b < NumButtons; b++ {
		if pressed&b.Mask() != 0 {
			emit(d.Map.Buttons[b])
		}
	}
	return keys
}
