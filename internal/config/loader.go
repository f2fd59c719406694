package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/gensource/internal/log"
	"firestige.xyz/gensource/pkg/event"
)

func Load(path string) (*Config, error) {
	v := viper.New()

	dir := filepath.Dir(path)
	filename := filepath.Base(path)
	fileExt := filepath.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, fileExt)

	v.SetConfigName(nameWithoutExt)
	v.SetConfigType(strings.TrimPrefix(fileExt, "."))
	v.AddConfigPath(dir)

	v.SetEnvPrefix("GENSOURCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = log.DefaultConfig()
	}
	if cfg.Source.Plugin == "" {
		cfg.Source.Plugin = "random_generator"
	}
	if cfg.Driver.BatchSize <= 0 {
		cfg.Driver.BatchSize = event.DefaultCapacity
	}
	if cfg.Driver.Batches < 0 {
		cfg.Driver.Batches = 0
	}
	if cfg.Driver.Store.Enabled && cfg.Driver.Store.Path == "" {
		cfg.Driver.Store.Path = "gensource.db"
	}
}
