package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override mediaurl.yaml.
const (
	EnvAddonPath   = "MEDIAURL_ADDON_PATH"
	EnvPickleStore = "MEDIAURL_PICKLE_STORE"
)

const ConfigFileName = mediaurl.DefaultConfigFileName

// Config is the content of mediaurl.yaml.
type Config struct {
	AddonID     string                    `yaml:"addon_id,omitempty"`
	AddonPath   string                    `yaml:"addon_path,omitempty"`
	PickleStore string                    `yaml:"pickle_store,omitempty"`
	PurgeAge    string                    `yaml:"purge_age,omitempty"`
	Actions     map[string][]schema.Field `yaml:"actions,omitempty"`
}

func Load(sourcePath string) (*Config, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", mediaurl.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, but a missing file yields an empty Config.
func LoadOrDefault(sourcePath string) (*Config, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		return &Config{}, nil
	}
	return cfg, err
}

// Validate checks values that cannot be caught by YAML decoding.
func (c *Config) Validate() error {
	var errs []error

	if c.AddonPath != "" && !strings.Contains(c.AddonPath, "://") {
		errs = append(errs, fmt.Errorf("%w: addon_path %q is not a URL", mediaurl.ErrInvalidConfig, c.AddonPath))
	}
	if strings.ContainsAny(c.AddonID, "/?&= ") {
		errs = append(errs, fmt.Errorf("%w: addon_id %q contains URL delimiters", mediaurl.ErrInvalidConfig, c.AddonID))
	}
	if c.PurgeAge != "" {
		if _, err := c.PurgeAgeDuration(); err != nil {
			errs = append(errs, err)
		}
	}
	for action, fields := range c.Actions {
		if len(fields) == 0 {
			errs = append(errs, fmt.Errorf("%w: action %q declares no fields", mediaurl.ErrInvalidConfig, action))
		}
	}
	if _, err := c.Schema(schema.Default()); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ApplyEnv overrides values from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAddonPath); v != "" {
		c.AddonPath = v
	}
	if v := getenv(EnvPickleStore); v != "" {
		c.PickleStore = v
	}
}

// ResolveAddonPath returns addon_path, else a path built from addon_id,
// else mediaurl.DefaultAddonPath.
func (c *Config) ResolveAddonPath() string {
	switch {
	case c.AddonPath != "":
		return c.AddonPath
	case c.AddonID != "":
		return "plugin://" + c.AddonID + "/"
	default:
		return mediaurl.DefaultAddonPath
	}
}

// PurgeAgeDuration parses purge_age, defaulting to mediaurl.DefaultPurgeAge.
func (c *Config) PurgeAgeDuration() (time.Duration, error) {
	if c.PurgeAge == "" {
		return mediaurl.DefaultPurgeAge, nil
	}
	d, err := time.ParseDuration(c.PurgeAge)
	if err != nil {
		return 0, fmt.Errorf("%w: purge_age: %v", mediaurl.ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: purge_age must be positive", mediaurl.ErrInvalidConfig)
	}
	return d, nil
}

// Schema merges the configured actions over base.
func (c *Config) Schema(base *schema.Schema) (*schema.Schema, error) {
	if len(c.Actions) == 0 {
		return base, nil
	}
	return base.With(c.Actions)
}
