// Package cmd holds the bootpad subcommand implementations invoked by
// Kong.
package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/hidraw"
	"github.com/bootpad/bootpad/internal/menu"
)

type Menu struct {
	Entries  []string      `help:"Menu entries" default:"linux,linux (recovery),memtest,firmware setup,reboot,poweroff"`
	Timeout  time.Duration `help:"Auto-boot countdown; 0 disables" default:"10s" env:"BOOTPAD_MENU_TIMEOUT"`
	Interval time.Duration `help:"Input poll interval" default:"10ms" env:"BOOTPAD_MENU_INTERVAL"`
}

// Run is called by Kong when the menu command is executed.
func (c *Menu) Run(logger *slog.Logger, cfg gamepad.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	drv := gamepad.New(cfg, logger)
	defer drv.Close()

	mon := hidraw.NewMonitor(drv, logger)
	if err := mon.Start(); err != nil {
		return err
	}
	defer mon.Close()

	idx, err := menu.Run(ctx, drv, menu.Options{
		Entries:      c.Entries,
		PollInterval: c.Interval,
		Timeout:      c.Timeout,
		Out:          os.Stdout,
		Color:        term.IsTerminal(int(os.Stdout.Fd())),
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	if idx < 0 {
		logger.Info("menu cancelled")
		return nil
	}
	logger.Info("entry accepted", "entry", c.Entries[idx])
	return nil
}
