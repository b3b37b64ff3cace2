package beacon

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New()

// Config is the file form of the registry options.
//
//	poll_interval: 5ms
//	error_history: 32
//	sync_mode: false
type Config struct {
	PollInterval time.Duration `yaml:"poll_interval" validate:"gte=0"`
	ErrorHistory int           `yaml:"error_history" validate:"gte=0,lte=4096"`
	SyncMode     bool          `yaml:"sync_mode"`
}

// LoadConfig parses and validates a YAML (or JSON) registry configuration.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal failed: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration into registry options.
func (c Config) Options() []Option {
	opts := []Option{
		WithPollInterval(c.PollInterval),
		WithErrorHistory(c.ErrorHistory),
	}
	if c.SyncMode {
		opts = append(opts, WithSyncMode())
	}
	return opts
}
