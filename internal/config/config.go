package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"pathswitch/internal/store"
)

// Config is the resolved configuration of a run.
type Config struct {
	StateFile string `mapstructure:"state_file" yaml:"state_file"`
	Store     string `mapstructure:"store" yaml:"store"`
	StoreFile string `mapstructure:"store_file" yaml:"store_file"`
	Notify    bool   `mapstructure:"notify" yaml:"notify"`
	WebAddr   string `mapstructure:"web_addr" yaml:"web_addr"`
	Verbose   int    `mapstructure:"verbose" yaml:"verbose"`
	ConfigDir string `mapstructure:"config_dir" yaml:"-"`
}

const (
	AppName        = "pathswitch"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "PATHSWITCH"
	DefaultStore   = string(store.KindAuto)
	DefaultNotify  = true
	DefaultWebAddr = "localhost:8080"
	DefaultVerbose = 0
	stateFileName  = "state.toml"
	storeFileName  = "path.env"
)

// GetConfigDir returns $XDG_CONFIG_HOME/pathswitch.
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// GetDataDir returns $XDG_DATA_HOME/pathswitch.
func GetDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

func defaultValues() map[string]any {
	return map[string]any{
		"state_file": filepath.Join(GetDataDir(), stateFileName),
		"store":      DefaultStore,
		"store_file": filepath.Join(GetDataDir(), storeFileName),
		"notify":     DefaultNotify,
		"web_addr":   DefaultWebAddr,
		"verbose":    DefaultVerbose,
	}
}

func ApplyDefaults(v *viper.Viper) {
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}
}

func ApplyEnvOverrides(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

func ReadInConfig(v *viper.Viper) error {
	// A missing config file is fine; defaults and env vars still apply.
	if err := v.ReadInConfig(); err != nil &&
		!errors.As(err, &viper.ConfigFileNotFoundError{}) &&
		!errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Setup points v at configFile (or the default location when empty) and
// layers defaults, env vars and the file.
func Setup(v *viper.Viper, configFile string) error {
	if configFile == "" {
		configFile = filepath.Join(GetConfigDir(), ConfigFileName)
	}
	v.SetConfigFile(configFile)
	ApplyEnvOverrides(v)
	ApplyDefaults(v)
	return ReadInConfig(v)
}

// FromViper decodes and validates the current viper state.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ConfigDir: filepath.Dir(v.ConfigFileUsed()),
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch store.Kind(c.Store) {
	case store.KindAuto, store.KindRegistry, store.KindFile:
	default:
		return fmt.Errorf("invalid store %q: must be one of auto, registry, file", c.Store)
	}
	if c.StateFile == "" {
		return fmt.Errorf("state_file must not be empty")
	}
	if store.Kind(c.Store) == store.KindFile && c.StoreFile == "" {
		return fmt.Errorf("store_file must not be empty when store is file")
	}
	return nil
}
