// Command bootpad runs a USB gamepad driven text-mode boot menu and its
// supporting tools.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/bootpad/bootpad/internal/config"
	"github.com/bootpad/bootpad/internal/configpaths"
	"github.com/bootpad/bootpad/internal/log"
)

func main() {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(findUserConfig(os.Args[1:]))

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("bootpad"),
		kong.Description("USB gamepad input driver for text-mode boot menus."),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order;
		// flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFile, err := log.Setup(cli.Log.Level, cli.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}
	if closeFile != nil {
		defer closeFile.Close()
	}

	driverCfg, err := cli.Input.DriverConfig()
	ctx.FatalIfErrorf(err)

	ctx.Bind(logger)
	ctx.Bind(driverCfg)

	ctx.FatalIfErrorf(ctx.Run())
}

// findUserConfig pre-scans the arguments for --config so the file can
// participate in Kong's configuration resolution.
func findUserConfig(args []string) string {
	for i, a := range args {
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("BOOTPAD_CONFIG")
}
