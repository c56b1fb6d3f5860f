// Package config loads the storagekey tool configuration.
//
// Configuration is loaded from a single file specified by:
//   - STORAGEKEY_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. Commands that need no
// configuration run with Default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/forestrie/go-storagekey/scale"
	"github.com/forestrie/go-storagekey/statestore"
	"gopkg.in/yaml.v3"
)

const EnvConfig = "STORAGEKEY_CONFIG"

var (
	ErrNoConfig      = errors.New("config: " + EnvConfig + " environment variable not set")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

type Config struct {
	// LogLevel is passed to the datatrails logger, NOOP silences it.
	LogLevel string `yaml:"log_level"`

	Decode   DecodeConfig   `yaml:"decode"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// DecodeConfig sets the codec defaults used by decode, get and batch.
type DecodeConfig struct {
	// OptionBool is "strict" or "compact".
	OptionBool      string `yaml:"option_bool"`
	FullConsumption bool   `yaml:"full_consumption"`
}

type SnapshotConfig struct {
	Path     string `yaml:"path"`
	Bucket   string `yaml:"bucket"`
	ReadOnly bool   `yaml:"read_only"`
	// OpenTimeout is a Go duration string.
	OpenTimeout string `yaml:"open_timeout"`
}

func Default() *Config {
	return &Config{
		LogLevel: "INFO",
		Decode: DecodeConfig{
			OptionBool:      scale.OptionBoolStrict.String(),
			FullConsumption: true,
		},
		Snapshot: SnapshotConfig{
			Bucket:      statestore.DefaultBucket,
			OpenTimeout: statestore.DefaultOpenTimeout.String(),
		},
	}
}

// Load loads configuration from the STORAGEKEY_CONFIG environment variable.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return nil, fmt.Errorf("%w; set it to the path of a yaml config file, or use --config", ErrNoConfig)
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a config document over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Snapshot.Path = os.ExpandEnv(cfg.Snapshot.Path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := scale.ParseOptionBoolScheme(c.Decode.OptionBool); err != nil {
		return fmt.Errorf("%w: decode.option_bool: %v", ErrInvalidConfig, err)
	}
	if _, err := c.snapshotTimeout(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Snapshot.Bucket) == "" {
		return fmt.Errorf("%w: snapshot.bucket is empty", ErrInvalidConfig)
	}
	return nil
}

// CodecOptions returns the scale options the decode settings select.
func (c *Config) CodecOptions() []scale.Option {
	scheme, _ := scale.ParseOptionBoolScheme(c.Decode.OptionBool)
	opts := []scale.Option{scale.WithOptionBoolScheme(scheme)}
	if c.Decode.FullConsumption {
		opts = append(opts, scale.WithFullConsumption())
	}
	return opts
}

// SnapshotOptions returns the statestore options the snapshot settings select.
func (c *Config) SnapshotOptions() []statestore.Option {
	opts := []statestore.Option{statestore.WithBucket(c.Snapshot.Bucket)}
	if c.Snapshot.ReadOnly {
		opts = append(opts, statestore.WithReadOnly())
	}
	if d, err := c.snapshotTimeout(); err == nil && d > 0 {
		opts = append(opts, statestore.WithOpenTimeout(d))
	}
	return opts
}
func (c *Config) snapshotTimeout() (time.Duration, error) {
	if c.Snapshot.OpenTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Snapshot.OpenTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: snapshot.open_timeout: %v", ErrInvalidConfig, err)
	}
	return d, nil
}
