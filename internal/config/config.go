// Package config loads the pj host settings from a YAML or TOML file.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/reoring/pj"
	"github.com/reoring/pj/source/gojson"
)

// Driver names accepted by Config.Driver.
const (
	DriverNative = "native"
	DriverGoJSON = "go-json"
)

const maxIndent = 16

// ErrUnknownFormat signals a config file whose extension is neither YAML nor
// TOML.
var ErrUnknownFormat = errors.New("unknown config file format")

// ErrInvalidConfig signals a value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the host settings. Indent must be between 1 and 16 spaces;
// use Compact for single-line output. A zero MaxDepth or MaxBytes selects the
// codec default.
type Config struct {
	Indent     int    `yaml:"indent" toml:"indent"`
	Compact    bool   `yaml:"compact" toml:"compact"`
	MaxDepth   int    `yaml:"max_depth" toml:"max_depth"`
	MaxBytes   int64  `yaml:"max_bytes" toml:"max_bytes"`
	StrictKeys bool   `yaml:"strict_keys" toml:"strict_keys"`
	WarnKeys   bool   `yaml:"warn_keys" toml:"warn_keys"`
	Driver     string `yaml:"driver" toml:"driver"`
	LogLevel   string `yaml:"log_level" toml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Indent:   len(pj.DefaultIndent),
		MaxDepth: pj.DefaultMaxDepth,
		Driver:   DriverNative,
		LogLevel: "*:INFO",
	}
}

// Load reads path on top of Default. The format follows the file extension:
// .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// an empty document leaves the defaults in place
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, errors.Wrapf(err, "decode yaml config %s", path)
		}
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).Strict(true).Decode(&cfg); err != nil {
			return cfg, errors.Wrapf(err, "decode toml config %s", path)
		}
	default:
		return cfg, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and the driver name.
func (c Config) Validate() error {
	if c.Indent < 1 || c.Indent > maxIndent {
		return errors.Wrapf(ErrInvalidConfig, "indent %d out of range [1, %d] (use compact for single-line output)", c.Indent, maxIndent)
	}
	if c.MaxDepth < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_depth %d is negative", c.MaxDepth)
	}
	if c.MaxBytes < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_bytes %d is negative", c.MaxBytes)
	}
	if _, err := c.JSONDriver(); err != nil {
		return err
	}
	return nil
}

// JSONDriver resolves the configured token source driver.
func (c Config) JSONDriver() (pj.JSONDriver, error) {
	switch c.Driver {
	case "", DriverNative:
		return pj.NativeDriver(), nil
	case DriverGoJSON:
		return gojson.Driver(), nil
	default:
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown driver %q", c.Driver)
	}
}

// Codec converts the settings into a pj.Codec.
func (c Config) Codec() (pj.Codec, error) {
	if err := c.Validate(); err != nil {
		return pj.Codec{}, err
	}
	drv, err := c.JSONDriver()
	if err != nil {
		return pj.Codec{}, err
	}
	codec := pj.Codec{
		Decoding: pj.DecodeOpt{MaxDepth: c.MaxDepth, MaxBytes: c.MaxBytes},
		Encoding: pj.EncodeOpt{Compact: c.Compact, MaxDepth: c.MaxDepth},
		Driver:   drv,
	}
	codec.Encoding.Indent = strings.Repeat(" ", c.Indent)
	switch {
	case c.StrictKeys:
		codec.Decoding.Strictness.OnDuplicateKey = pj.Reject
	case c.WarnKeys:
		codec.Decoding.Strictness.OnDuplicateKey = pj.Warn
	}
	return codec, nil
}
