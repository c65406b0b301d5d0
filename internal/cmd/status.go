package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/hidraw"
)

type Status struct{}

// Run scans once and reports what is connected, or the allowlist when
// nothing is.
func (c *Status) Run(logger *slog.Logger, cfg gamepad.Config) error {
	drv := gamepad.New(cfg, logger)
	defer drv.Close()

	mon := hidraw.NewMonitor(drv, logger)
	if err := mon.Start(); err != nil {
		return err
	}
	defer mon.Close()

	attached := drv.Status()
	if len(attached) == 0 {
		fmt.Println("No controller connected")
		fmt.Println()
		fmt.Println("Supported controllers:")
		for _, info := range gamepad.Controllers() {
			fmt.Printf("  %s (VID=%04x PID=%04x)\n", info.Name, info.VendorID, info.ProductID)
		}
		return nil
	}
	for _, s := range attached {
		fmt.Printf("Controller connected: %s\n", s.Name)
		fmt.Printf("  Vendor ID:  0x%04x\n", s.VendorID)
		fmt.Printf("  Product ID: 0x%04x\n", s.ProductID)
		if s.Stalled {
			fmt.Println("  Input stalled (reconnect the controller)")
		}
	}
	return nil
}
