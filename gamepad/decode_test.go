package gamepad_test

import (
	"testing"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func report(x, y, buttons uint8) gamepad.Report {
	r := gamepad.Baseline()
	r[0] = x
	r[1] = y
	r[4] = buttons
	return r
}

func TestDetectSinglePressSingleEvent(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())
	base := gamepad.Baseline()

	type testCase struct {
		name string
		cur  gamepad.Report
		want gamepad.Key
	}

	cases := []testCase{
		{name: "stick up", cur: report(0x7f, 0x00, 0), want: gamepad.KeyUp},
		{name: "stick down", cur: report(0x7f, 0xff, 0), want: gamepad.KeyDown},
		{name: "stick left", cur: report(0x00, 0x7f, 0), want: gamepad.KeyLeft},
		{name: "stick right", cur: report(0xff, 0x7f, 0), want: gamepad.KeyRight},
		{name: "button A", cur: report(0x7f, 0x7f, gamepad.ButtonA.Mask()), want: gamepad.KeyActivate},
		{name: "button B", cur: report(0x7f, 0x7f, gamepad.ButtonB.Mask()), want: gamepad.KeyCancel},
		{name: "button start", cur: report(0x7f, 0x7f, gamepad.ButtonStart.Mask()), want: gamepad.KeyActivate},
		{name: "button select", cur: report(0x7f, 0x7f, gamepad.ButtonSelect.Mask()), want: gamepad.KeyEdit},
		{name: "button Y", cur: report(0x7f, 0x7f, gamepad.ButtonY.Mask()), want: gamepad.KeyCommand},
		{name: "left shoulder", cur: report(0x7f, 0x7f, gamepad.ButtonL.Mask()), want: gamepad.KeyPageUp},
		{name: "right shoulder", cur: report(0x7f, 0x7f, gamepad.ButtonR.Mask()), want: gamepad.KeyPageDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []gamepad.Key{tc.want}, d.Detect(base, tc.cur))
		})
	}
}

func TestDetectHeldPoseEmitsNothing(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())

	reports := []gamepad.Report{
		gamepad.Baseline(),
		report(0x00, 0x00, 0xff),
		report(0xff, 0xff, gamepad.ButtonA.Mask()|gamepad.ButtonL.Mask()),
	}
	for _, r := range reports {
		assert.Empty(t, d.Detect(r, r))
	}
}

func TestDetectReleaseIsSilent(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())
	held := report(0x00, 0x00, gamepad.ButtonA.Mask())
	assert.Empty(t, d.Detect(held, gamepad.Baseline()))
}

func TestDetectDeadzoneBoundary(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())
	base := gamepad.Baseline()

	// Motion within the band never fires.
	for _, y := range []uint8{
		gamepad.AxisCenter - gamepad.DefaultThreshold,
		gamepad.AxisCenter - 3,
		gamepad.AxisCenter + 3,
		gamepad.AxisCenter + gamepad.DefaultThreshold,
	} {
		assert.Empty(t, d.Detect(base, report(0x7f, y, 0)), "y=%#x", y)
	}

	// One past the band always fires.
	assert.Equal(t, []gamepad.Key{gamepad.KeyUp},
		d.Detect(base, report(0x7f, gamepad.AxisCenter-gamepad.DefaultThreshold-1, 0)))
	assert.Equal(t, []gamepad.Key{gamepad.KeyDown},
		d.Detect(base, report(0x7f, gamepad.AxisCenter+gamepad.DefaultThreshold+1, 0)))
}

func TestDetectSimultaneousEdgesCanonicalOrder(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())
	base := gamepad.Baseline()

	// Everything at once: vertical, horizontal, then buttons by bit.
	cur := report(0x00, 0x00, gamepad.ButtonA.Mask()|gamepad.ButtonR.Mask())
	assert.Equal(t,
		[]gamepad.Key{gamepad.KeyUp, gamepad.KeyLeft, gamepad.KeyActivate, gamepad.KeyPageDown},
		d.Detect(base, cur))
}

// The menu walkthrough from the design discussion: push up, confirm while
// holding, let go.
func TestDetectMenuScenario(t *testing.T) {
	d := gamepad.NewDecoder(gamepad.DefaultKeyMap())

	r0, ok := gamepad.ParseReport([]byte{0x7f, 0x7f, 0x7f, 0x7f, 0x00, 0x00, 0x00, 0x00})
	require.True(t, ok)
	r1, ok := gamepad.ParseReport([]byte{0x7f, 0x00, 0x7f, 0x7f, 0x00, 0x00, 0x00, 0x00})
	require.True(t, ok)
	r2, ok := gamepad.ParseReport([]byte{0x7f, 0x00, 0x7f, 0x7f, 0x02, 0x00, 0x00, 0x00})
	require.True(t, ok)

	assert.Equal(t, []gamepad.Key{gamepad.KeyUp}, d.Detect(r0, r1))
	// Stick still up: only the fresh button edge fires.
	assert.Equal(t, []gamepad.Key{gamepad.KeyActivate}, d.Detect(r1, r2))
	// Back to rest: silence.
	assert.Empty(t, d.Detect(r2, r0))
}

func TestDetectCustomMap(t *testing.T) {
	m := gamepad.KeyMap{Up: gamepad.KeyPageUp, Down: gamepad.KeyPageDown}
	m.Buttons[gamepad.ButtonA] = gamepad.KeyCancel
	d := gamepad.NewDecoder(m)
	base := gamepad.Baseline()

	assert.Equal(t, []gamepad.Key{gamepad.KeyPageUp}, d.Detect(base, report(0x7f, 0x00, 0)))
	assert.Equal(t, []gamepad.Key{gamepad.KeyCancel},
		d.Detect(base, report(0x7f, 0x7f, gamepad.ButtonA.Mask())))
	// Unmapped controls stay quiet.
	assert.Empty(t, d.Detect(base, report(0x00, 0x7f, 0)))
	assert.Empty(t, d.Detect(base, report(0x7f, 0x7f, gamepad.ButtonStart.Mask())))
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, k := range []gamepad.Key{
		gamepad.KeyUp, gamepad.KeyDown, gamepad.KeyLeft, gamepad.KeyRight,
		gamepad.KeyActivate, gamepad.KeyCancel, gamepad.KeyEdit,
		gamepad.KeyCommand, gamepad.KeyPageUp, gamepad.KeyPageDown,
	} {
		got, ok := gamepad.ParseKey(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := gamepad.ParseKey("turbo")
	assert.False(t, ok)
}
