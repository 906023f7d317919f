package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var searchPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used when no file and no env overrides exist.
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:           3000,
			ReadTimeoutMS:  30000,
			WriteTimeoutMS: 0,
		},
		Bahn: BahnConfig{
			BaseURL: "https://www.bahn.de",
		},
		Search: SearchConfig{
			DefaultDayLimit: 3,
			MaxDayLimit:     31,
		},
		Stations: StationsConfig{
			Resolver: ResolverRemote,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads CONFIG_PATH, or the first of config.yml and ./config/config.yml
// that exists, applies env overrides and validates the result. A missing
// default file is not an error; a missing CONFIG_PATH is.
func Load() (*AppConfig, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}
	for _, p := range searchPaths {
		cfg, err := LoadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	cfg := Default()
	applyEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a single YAML file on top of Default.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyEnv(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *AppConfig) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = getEnvAsInt("PORT", cfg.Server.Port)
	cfg.Bahn.BaseURL = getEnv("BAHN_BASE_URL", cfg.Bahn.BaseURL)
	cfg.Stations.Resolver = getEnv("STATION_RESOLVER", cfg.Stations.Resolver)
	cfg.Telegram.Token = getEnv("TELEGRAM_BOT_TOKEN", cfg.Telegram.Token)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
