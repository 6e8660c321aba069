package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/flycam/engine/camera"
	"github.com/spaghettifunk/flycam/engine/core"
)

// Application describes the window and logging setup.
type Application struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height"`
	// One of debug, info, warn, error, fatal.
	LogLevel string `toml:"log_level"`
}

// Config is the content of flycam.toml. Keys missing from the file keep
// their default values.
type Config struct {
	Application Application   `toml:"application"`
	Camera      camera.Params `toml:"camera"`
	// Bindings maps action names to key or mouse button names. Actions that
	// are not listed keep their default bindings.
	Bindings map[string][]string `toml:"bindings"`
}

func Default() *Config {
	return &Config{
		Application: Application{
			Name:        "Flycam",
			StartPosX:   100,
			StartPosY:   100,
			StartWidth:  1280,
			StartHeight: 720,
			LogLevel:    "info",
		},
		Camera: camera.DefaultParams(),
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML on top of the default configuration.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return nil, err
	}
	if _, err := c.ActionBindings(); err != nil {
		return nil, err
	}
	warnParams(c.Camera)
	return c, nil
}

// Level returns the configured log level.
func (c *Config) Level() (core.LogLevel, error) {
	level, err := core.ParseLogLevel(c.Application.LogLevel)
	if err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// ActionBindings resolves the configured bindings over the defaults.
func (c *Config) ActionBindings() (core.Bindings, error) {
	bindings := core.DefaultBindings()
	overrides, err := core.ParseBindings(c.Bindings)
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}
	for action, inputs := range overrides {
		bindings[action] = inputs
	}
	return bindings, nil
}

// Params are used as they are. Bad values only produce a warning.
func warnParams(params camera.Params) {
	values := []struct {
		name  string
		value float32
	}{
		{"default_speed", params.DefaultSpeed},
		{"acceleration", params.Acceleration},
		{"slow_speed", params.SlowSpeed},
		{"scroll_snap", params.ScrollSnap},
	}
	for _, v := range values {
		if v.value <= 0 {
			core.LogWarn("camera.%s should be greater than zero, got %f", v.name, v.value)
		}
	}
}
