package settings

import (
	"bytes"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel        = "info"
	defaultInitialCapacity = 8
	defaultMaxSize         = 100 // megabytes
	defaultMaxBackups      = 3
	defaultMaxAge          = 28 // days
)

var validate = validator.New()

// Load reads the YAML config at path, fills in defaults and validates it.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.setDefaultConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints declared in the struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func (c *Config) setDefaultConfig() {
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaultLogLevel
	}
	if c.Logger.MaxSize == 0 {
		c.Logger.MaxSize = defaultMaxSize
	}
	if c.Logger.MaxBackups == 0 {
		c.Logger.MaxBackups = defaultMaxBackups
	}
	if c.Logger.MaxAge == 0 {
		c.Logger.MaxAge = defaultMaxAge
	}
	if c.Queue.InitialCapacity == nil {
		capacity := defaultInitialCapacity
		c.Queue.InitialCapacity = &capacity
	}
}
