// Package config loads iconforge's optional TOML configuration.
//
// The file only controls where things are: the SVG source, the output root and
// explicit locations for the external tools. The backend order and the size
// table are fixed and cannot be configured.
//
//	source = "icon_duolingo.svg"
//	output_dir = "web"
//
//	[tools]
//	rsvg_convert = "/usr/local/bin/rsvg-convert"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/iconforge/pkg/errors"
	"github.com/matzehuels/iconforge/pkg/raster"
	"github.com/matzehuels/iconforge/pkg/raster/backend"
)

// DefaultFile is the config file picked up from the working directory when
// no path is given explicitly.
const DefaultFile = "iconforge.toml"

// Config is the decoded configuration file.
type Config struct {
	Source    string `toml:"source"`
	OutputDir string `toml:"output_dir"`
	Tools     Tools  `toml:"tools"`
}

// Tools holds explicit binary locations for the external backends.
type Tools struct {
	RsvgConvert string `toml:"rsvg_convert"`
	Magick      string `toml:"magick"`
	Inkscape    string `toml:"inkscape"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Source: raster.DefaultSource, OutputDir: "."}
}

// Load reads the config at path. Missing fields keep their defaults; unknown
// keys are an error so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve loads path when given. With an empty path it loads DefaultFile from
// dir if one exists, and otherwise returns the defaults.
func Resolve(path, dir string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	candidate := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(candidate); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(candidate)
	return cfg, candidate, err
}

// Validate checks that required values are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "source cannot be empty")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output_dir cannot be empty")
	}
	return nil
}

// BackendTools converts the [tools] table for the backend package.
func (c Config) BackendTools() backend.Tools {
	return backend.Tools{
		RsvgConvert: c.Tools.RsvgConvert,
		Magick:      c.Tools.Magick,
		Inkscape:    c.Tools.Inkscape,
	}
}
