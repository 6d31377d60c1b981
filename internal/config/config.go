// Package config loads the quadrant tool's YAML configuration file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when none is named explicitly.
const DefaultPath = "quadrant.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ShortestPrecision renders numbers with the fewest digits that round-trip.
const ShortestPrecision = -1

// maxPrecision is the most decimal places a float64 can meaningfully carry.
const maxPrecision = 17

// ErrInvalidConfig is wrapped by every validation and decoding failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tool's settings.
type Config struct {
	Precision int    `yaml:"precision"`
	Format    string `yaml:"format"`
	Debug     bool   `yaml:"debug"`
	LogFile   string `yaml:"log_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Precision: ShortestPrecision,
		Format:    FormatText,
	}
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.Precision < ShortestPrecision || c.Precision > maxPrecision {
		return errors.Wrapf(ErrInvalidConfig, "precision %d outside [%d, %d]",
			c.Precision, ShortestPrecision, maxPrecision)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidConfig, "format %q: want %q or %q", c.Format, FormatText, FormatYAML)
	}
	return nil
}

type loader struct {
	defaultPath string
}

// Option customizes Load.
type Option func(*loader)

// WithDefaultPath changes the file read when Load is given an empty path.
func WithDefaultPath(path string) Option {
	return func(l *loader) { l.defaultPath = path }
}

// Load reads the config at path over the defaults. An empty path reads the
// default file, whose absence is not an error; a named file must exist.
func Load(path string, opts ...Option) (Config, error) {
	l := loader{defaultPath: DefaultPath}
	for _, opt := range opts {
		opt(&l)
	}

	explicit := path != ""
	if !explicit {
		path = l.defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(ErrInvalidConfig, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), errors.WithMessage(err, path)
	}
	return cfg, nil
}
