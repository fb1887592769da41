package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "REORDER"
	configName     = "reorder"
	defaultData    = "stock.json"
	defaultLevel   = "warn"
	defaultMaxSize = 16
)

// LogConfig controls the console level and the optional rotating log file
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Config is the resolved application configuration
type Config struct {
	DataFile string    `mapstructure:"data_file"`
	Log      LogConfig `mapstructure:"log"`
}

// Load resolves configuration from defaults, an optional reorder.yaml (or the
// explicit file path), REORDER_* environment variables and, highest priority,
// the given flags. Only flags the user actually set override other sources.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_file", defaultData)
	v.SetDefault("log.level", defaultLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", defaultMaxSize)
	v.SetDefault("log.max_backups", 3)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"data_file": "data",
			"log.level": "log-level",
			"log.file":  "log-file",
		} {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if strings.TrimSpace(cfg.DataFile) == "" {
		return nil, fmt.Errorf("data file cannot be empty")
	}
	return &cfg, nil
}
