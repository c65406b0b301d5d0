//go:build !windows

package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user config directory. Root gets
// /etc/bootpad so a system install has a stable location.
func DefaultConfigDir() (string, error) {
	if os.Geteuid() == 0 {
		return filepath.Join(string(os.PathSeparator), "etc", "bootpad"), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "bootpad"), nil
}
