//go:build windows

package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user config directory.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bootpad"), nil
}
