// Package configpaths resolves the candidate configuration file
// locations for bootpad.
package configpaths

import (
	"path/filepath"
	"strings"
)

// ConfigCandidatePaths returns config file candidates grouped by format,
// lowest priority first (kong loads them in order, later files win, and
// flags/env override all of them). userPath, when set, is appended to
// the group matching its extension so an explicit --config wins within
// its format.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	dirs = append(dirs, ".")

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "bootpad.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "bootpad.yaml"), filepath.Join(dir, "bootpad.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "bootpad.toml"))
	}

	switch strings.ToLower(filepath.Ext(userPath)) {
	case ".json":
		jsonPaths = append(jsonPaths, userPath)
	case ".yaml", ".yml":
		yamlPaths = append(yamlPaths, userPath)
	case ".toml":
		tomlPaths = append(tomlPaths, userPath)
	}
	return jsonPaths, yamlPaths, tomlPaths
}
