// Package config defines the CLI structure and configuration for bootpad.
package config

import (
	"fmt"

	"github.com/bootpad/bootpad/gamepad"
	"github.com/bootpad/bootpad/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"BOOTPAD_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"BOOTPAD_LOG_FILE"`
}

type Input struct {
	Deadzone    uint8             `help:"Axis deadzone half-width around center" default:"64" env:"BOOTPAD_DEADZONE"`
	QueueSize   int               `help:"Buffered key events per controller" default:"16" env:"BOOTPAD_QUEUE_SIZE"`
	Controllers int               `help:"Maximum simultaneously attached controllers" default:"8" env:"BOOTPAD_CONTROLLERS"`
	Mapping     map[string]string `help:"Control-to-key overrides (controls: up,down,left,right,a,b,x,y,l,r,select,start; keys: up,down,left,right,activate,cancel,edit,command,page-up,page-down,none)" env:"BOOTPAD_MAPPING"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log   `embed:"" prefix:"log."`
	Input `embed:"" prefix:"input."`

	Config string `help:"Explicit config file path" env:"BOOTPAD_CONFIG"`

	Menu   cmd.Menu   `cmd:"" default:"withargs" help:"Run the controller-driven text menu"`
	Status cmd.Status `cmd:"" help:"Show connected and supported controllers"`
	Watch  cmd.Watch  `cmd:"" help:"Print decoded key events as they arrive"`
	Map    cmd.Map    `cmd:"" help:"Interactively map a controller and write the mapping file"`
}

// DriverConfig translates the input settings into a driver configuration,
// applying any mapping overrides on top of the default key map.
func (i Input) DriverConfig() (gamepad.Config, error) {
	m := gamepad.DefaultKeyMap()
	for control, keyName := range i.Mapping {
		key, ok := gamepad.ParseKey(keyName)
		if !ok {
			return gamepad.Config{}, fmt.Errorf("config: unknown key %q for control %q", keyName, control)
		}
		switch control {
		case "up":
			m.Up = key
		case "down":
			m.Down = key
		case "left":
			m.Left = key
		case "right":
			m.Right = key
		default:
			b, ok := gamepad.ParseButton(control)
			if !ok {
				return gamepad.Config{}, fmt.Errorf("config: unknown control %q", control)
			}
			m.Buttons[b] = key
		}
	}
	return gamepad.Config{
		Threshold:      i.Deadzone,
		QueueSize:      i.QueueSize,
		MaxControllers: i.Controllers,
		Map:            &m,
	}, nil
}
