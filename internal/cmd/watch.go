package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/hidraw"
)

type Watch struct {
	Interval time.Duration `help:"Input poll interval" default:"10ms"`
}

// Run prints decoded keys until interrupted. Useful for checking a
// controller and mapping before trusting them with a boot menu.
func (c *Watch) Run(logger *slog.Logger, cfg gamepad.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	drv := gamepad.New(cfg, logger)
	defer drv.Close()

	mon := hidraw.NewMonitor(drv, logger)
	if err := mon.Start(); err != nil {
		return err
	}
	defer mon.Close()

	logger.Info("watching for input, press Ctrl-C to stop")
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			for k := drv.GetKey(); k != gamepad.KeyNone; k = drv.GetKey() {
				fmt.Println(k)
			}
		}
	}
}
