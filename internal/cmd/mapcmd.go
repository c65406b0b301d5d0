package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pelletier/go-toml"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/hidraw"
	"github.com/bootpad/bootpad/usb"
)

type Map struct {
	Device  string        `help:"hidraw node to map (default: first supported controller)"`
	Output  string        `help:"Mapping file to write" default:"bootpad.toml"`
	Timeout time.Duration `help:"How long to wait for each control" default:"30s"`
}

// mappingFile is the TOML shape the map command writes; it matches the
// input.mapping config keys so the file can be used as-is via --config.
type mappingFile struct {
	Input struct {
		Mapping map[string]string `toml:"mapping"`
	} `toml:"input"`
}

// Run walks the user through pressing one control per logical key and
// writes the resulting mapping file.
func (c *Map) Run(logger *slog.Logger, cfg gamepad.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := c.findController()
	if err != nil {
		return err
	}
	defer dev.Close()

	desc := dev.Desc()
	name, ok := gamepad.Supported(desc.VendorID, desc.ProductID)
	if !ok {
		name = desc.Product
	}
	fmt.Printf("Mapping %s (VID=%04x PID=%04x)\n\n", name, desc.VendorID, desc.ProductID)

	eps := dev.Endpoints(0, 0)
	r := &reportReader{dev: dev, ep: eps[0], buf: make([]byte, gamepad.ReportSize)}

	fmt.Println("Release all buttons and center the stick...")
	baseline, err := r.settled(ctx, c.Timeout)
	if err != nil {
		return err
	}

	dec := gamepad.NewDecoder(gamepad.DefaultKeyMap())
	if cfg.Threshold != 0 {
		dec.Threshold = cfg.Threshold
	}

	keys := []gamepad.Key{
		gamepad.KeyUp, gamepad.KeyDown, gamepad.KeyLeft, gamepad.KeyRight,
		gamepad.KeyActivate, gamepad.KeyCancel, gamepad.KeyEdit,
		gamepad.KeyCommand, gamepad.KeyPageUp, gamepad.KeyPageDown,
	}
	mapping := make(map[string]string, len(keys))
	for i, key := range keys {
		fmt.Printf("[%d/%d] Press the control for %q\n", i+1, len(keys), key)
		control, err := r.waitForControl(ctx, dec, baseline, c.Timeout)
		if err != nil {
			return fmt.Errorf("map: waiting for %q: %w", key, err)
		}
		if prev, dup := mapping[control]; dup {
			fmt.Printf("  %s was already mapped to %s, overriding\n", control, prev)
		}
		mapping[control] = key.String()
		fmt.Printf("  %s -> %s\n", control, key)
		if err := r.waitForRelease(ctx, dec, baseline, c.Timeout); err != nil {
			return err
		}
	}

	var out mappingFile
	out.Input.Mapping = mapping
	data, err := toml.Marshal(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("\nWrote %s; use it with: bootpad --config %s menu\n", c.Output, c.Output)
	logger.Info("mapping written", "file", c.Output, "controls", len(mapping))
	return nil
}

func (c *Map) findController() (*hidraw.Device, error) {
	if c.Device != "" {
		return hidraw.Open(c.Device)
	}
	paths, _ := filepath.Glob("/dev/hidraw*")
	for _, p := range paths {
		dev, err := hidraw.Open(p)
		if err != nil {
			continue
		}
		desc := dev.Desc()
		if _, ok := gamepad.Supported(desc.VendorID, desc.ProductID); ok {
			return dev, nil
		}
		_ = dev.Close()
	}
	return nil, fmt.Errorf("map: no supported controller found (try --device)")
}

// reportReader polls raw reports off a device. Unlike the driver this is
// a tool context, so sleeping between polls is fine.
type reportReader struct {
	dev usb.Device
	ep  usb.EndpointDesc
	buf []byte
}

// next returns the next full report, or false when the deadline passes
// without one.
func (r *reportReader) next(ctx context.Context, deadline time.Time) (gamepad.Report, bool, error) {
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return gamepad.Report{}, false, err
		}
		t, err := r.dev.SubmitRead(r.ep, r.buf)
		if err != nil {
			return gamepad.Report{}, false, err
		}
		status, n := t.Poll()
		t.Cancel()
		if status == usb.TransferCompleted {
			if report, ok := gamepad.ParseReport(r.buf[:n]); ok {
				return report, true, nil
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return gamepad.Report{}, false, nil
}

// settled waits for input to go quiet and returns the resting report.
func (r *reportReader) settled(ctx context.Context, timeout time.Duration) (gamepad.Report, error) {
	deadline := time.Now().Add(timeout)
	last, ok, err := r.next(ctx, deadline)
	if err != nil {
		return last, err
	}
	if !ok {
		return last, fmt.Errorf("map: no report from controller")
	}
	// Keep draining until half a second passes without change.
	quiet := time.Now()
	for time.Now().Before(deadline) && time.Since(quiet) < 500*time.Millisecond {
		report, ok, err := r.next(ctx, time.Now().Add(20*time.Millisecond))
		if err != nil {
			return last, err
		}
		if ok && report != last {
			last = report
			quiet = time.Now()
		}
	}
	return last, nil
}

// waitForControl blocks until a control leaves its baseline state and
// names it: a button name, or a stick direction.
func (r *reportReader) waitForControl(ctx context.Context, dec gamepad.Decoder, baseline gamepad.Report, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	for {
		report, ok, err := r.next(ctx, deadline)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("timed out")
		}
		if pressed := report.Buttons() &^ baseline.Buttons(); pressed != 0 {
			for b := gamepad.Button(0); b < gamepad.NumButtons; b++ {
				if pressed&b.Mask() != 0 {
					return b.String(), nil
				}
			}
		}
		if z := dec.Zone(report.Y()); z != dec.Zone(baseline.Y()) {
			if z == gamepad.ZoneLow {
				return "up", nil
			}
			if z == gamepad.ZoneHigh {
				return "down", nil
			}
		}
		if z := dec.Zone(report.X()); z != dec.Zone(baseline.X()) {
			if z == gamepad.ZoneLow {
				return "left", nil
			}
			if z == gamepad.ZoneHigh {
				return "right", nil
			}
		}
	}
}

// waitForRelease blocks until the controller is back at baseline so the
// held control is not read as the answer to the next prompt.
func (r *reportReader) waitForRelease(ctx context.Context, dec gamepad.Decoder, baseline gamepad.Report, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		report, ok, err := r.next(ctx, deadline)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("map: controller never returned to rest")
		}
		if report.Buttons() == baseline.Buttons() &&
			dec.Zone(report.X()) == dec.Zone(baseline.X()) &&
			dec.Zone(report.Y()) == dec.Zone(baseline.Y()) {
			return nil
		}
	}
}
