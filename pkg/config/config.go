// Package config loads graphedit settings from a TOML file.
//
// The file is optional. Missing keys keep their defaults, and unknown keys are
// rejected so typos surface instead of being ignored:
//
//	[defaults]
//	color = "#000000"
//	selected_color = "#0000ff"
//	size = 10
//	thickness = 1
//	selected_thickness = 2
//	shape = "circle"
//
//	[history]
//	limit = 100
//
//	[export]
//	format = "xml"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	gerrors "github.com/matzehuels/graphedit/pkg/errors"
	"github.com/matzehuels/graphedit/pkg/graph"
	gio "github.com/matzehuels/graphedit/pkg/io"
)

const (
	appName  = "graphedit"
	fileName = "config.toml"
)

// Config holds every setting.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	History  History  `toml:"history"`
	Export   Export   `toml:"export"`
}

// Defaults styles elements created without explicit attributes.
type Defaults struct {
	Color             graph.Color `toml:"color"`
	SelectedColor     graph.Color `toml:"selected_color"`
	Size              int         `toml:"size"`
	Thickness         int         `toml:"thickness"`
	SelectedThickness int         `toml:"selected_thickness"`
	Shape             graph.Shape `toml:"shape"`
}

// History configures the undo stack.
type History struct {
	Limit int `toml:"limit"`
}

// Export configures the export command.
type Export struct {
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := graph.StandardDefaults()
	return Config{
		Defaults: Defaults{
			Color:             d.Color,
			SelectedColor:     d.SelectedColor,
			Size:              d.Size,
			Thickness:         d.Thickness,
			SelectedThickness: d.SelectedThickness,
			Shape:             d.Shape,
		},
		History: History{Limit: 100},
		Export:  Export{Format: gio.FormatXML},
	}
}

// Graph converts the defaults section for [graph.WithDefaults].
func (d Defaults) Graph() graph.Defaults {
	return graph.Defaults{
		Color:             d.Color,
		SelectedColor:     d.SelectedColor,
		Size:              d.Size,
		Thickness:         d.Thickness,
		SelectedThickness: d.SelectedThickness,
		Shape:             d.Shape,
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Defaults.Graph().Validate(); err != nil {
		return err
	}
	if c.History.Limit <= 0 {
		return gerrors.New(gerrors.ErrCodeInvalidInput, "history.limit must be positive, got %d", c.History.Limit)
	}
	return gerrors.ValidateFormat(c.Export.Format, gio.Formats)
}

// Load reads the file at path over [Default]. A missing file yields the
// defaults. Malformed TOML and invalid colors or shapes are INVALID_FORMAT
// errors, unknown keys and invalid values are INVALID_INPUT errors.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, gerrors.Wrap(gerrors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, gerrors.New(gerrors.ErrCodeInvalidInput, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Export.Format = strings.ToLower(cfg.Export.Format)
	if err := cfg.Validate(); err != nil {
		return Config{}, gerrors.Wrap(gerrors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Path returns the default config file location using the XDG standard
// (~/.config/graphedit/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", gerrors.Wrap(gerrors.ErrCodeInvalidPath, err, "locate home directory")
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Encode renders cfg as TOML.
func (c Config) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "", gerrors.Wrap(gerrors.ErrCodeInternal, err, "encode config")
	}
	return sb.String(), nil
}
