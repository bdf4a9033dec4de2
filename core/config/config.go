// Package config loads discolor settings from ~/.discolor/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding config, history and logs.
const DirName = ".discolor"

type Config struct {
	UI        UIConfig        `mapstructure:"ui" yaml:"ui"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard"`
	Render    RenderConfig    `mapstructure:"render" yaml:"render"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
}

type UIConfig struct {
	Effects     bool   `mapstructure:"effects" yaml:"effects"`
	HistoryFile string `mapstructure:"history_file" yaml:"history_file"`
}

type ClipboardConfig struct {
	Backend string        `mapstructure:"backend" yaml:"backend"` // system, osc52, command or file
	Command string        `mapstructure:"command" yaml:"command"` // used by the command backend
	File    string        `mapstructure:"file" yaml:"file"`       // used by the file backend
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type RenderConfig struct {
	EmitBackground bool `mapstructure:"emit_background" yaml:"emit_background"`
	ShowExport     bool `mapstructure:"show_export" yaml:"show_export"`
}

type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Backends lists the accepted clipboard.backend values.
var Backends = []string{"system", "osc52", "command", "file"}

// Dir returns ~/.discolor.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Defaults returns the built-in configuration rooted at dir.
func Defaults(dir string) Config {
	return Config{
		UI: UIConfig{
			Effects:     true,
			HistoryFile: filepath.Join(dir, "history.tmp"),
		},
		Clipboard: ClipboardConfig{
			Backend: "system",
			Command: "",
			File:    filepath.Join(dir, "message.md"),
			Timeout: 3 * time.Second,
		},
		Log: LogConfig{
			File: filepath.Join(dir, "session.log"),
		},
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper, dir string) {
	d := Defaults(dir)
	v.SetDefault("ui.effects", d.UI.Effects)
	v.SetDefault("ui.history_file", d.UI.HistoryFile)
	v.SetDefault("clipboard.backend", d.Clipboard.Backend)
	v.SetDefault("clipboard.command", d.Clipboard.Command)
	v.SetDefault("clipboard.file", d.Clipboard.File)
	v.SetDefault("clipboard.timeout", d.Clipboard.Timeout)
	v.SetDefault("render.emit_background", d.Render.EmitBackground)
	v.SetDefault("render.show_export", d.Render.ShowExport)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads the config at path. An empty path means dir/config.yaml, and a
// missing default file is not an error. Environment variables prefixed with
// DISCOLOR_ override file values.
func Load(v *viper.Viper, path, dir string) (Config, error) {
	SetDefaults(v, dir)
	v.SetEnvPrefix("discolor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot check by type.
func (c Config) Validate() error {
	for _, b := range Backends {
		if c.Clipboard.Backend == b {
			if c.Clipboard.Timeout <= 0 {
				return fmt.Errorf("clipboard.timeout must be positive, got %s", c.Clipboard.Timeout)
			}
			return nil
		}
	}
	return fmt.Errorf("clipboard.backend %q is not one of %v", c.Clipboard.Backend, Backends)
}

// WriteDefault writes the defaults to path as YAML. It refuses to overwrite.
func WriteDefault(path, dir string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	data, err := yaml.Marshal(Defaults(dir))
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
