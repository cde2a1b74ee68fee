package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ZhangCHW/fast-methods/pkg/errors"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "fmplot.toml"

// knownSurfaces lists the selectable display backends.
var knownSurfaces = []string{"png", "term", "http", "discard"}

// Config holds the file-configurable defaults. Flags always win over the
// config file.
type Config struct {
	// Surface selects the display backend: png, term, http or discard.
	Surface string `toml:"surface"`

	// Scale is the integer upscale factor for png and http frames.
	Scale int `toml:"scale"`

	// OutDir is the directory the png surface writes into.
	OutDir string `toml:"out_dir"`

	// Addr is the listen address of the http preview server.
	Addr string `toml:"addr"`

	// Title is the base window title prepended to every frame.
	Title string `toml:"title"`
}

// defaultConfig returns the built-in defaults used when no config file
// exists.
func defaultConfig() Config {
	return Config{
		Surface: "png",
		Scale:   8,
		OutDir:  "frames",
		Addr:    "localhost:8080",
		Title:   "FMM",
	}
}

// loadConfig reads the TOML config at path, falling back to
// fmplot.toml in the working directory, falling back to defaults when
// neither exists. An explicitly given path that cannot be read is an error;
// a missing default file is not.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if err := errors.ValidateSurfaceName(cfg.Surface, knownSurfaces); err != nil {
		return err
	}
	if cfg.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %d", cfg.Scale)
	}
	if err := errors.ValidateTitle(cfg.Title); err != nil {
		return err
	}
	return nil
}
