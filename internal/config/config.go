package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendLibSQL = "libsql"
	BackendRedis  = "redis"
)

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Log      LogConfig      `toml:"log"`
	Defaults DefaultsConfig `toml:"defaults"`
}

type StoreConfig struct {
	Backend       string `toml:"backend"`
	Path          string `toml:"path"` // JSON file for the file backend.
	URL           string `toml:"url"`  // The entire libsql connection string.
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
	CacheMB       int    `toml:"cache_mb"` // 0 disables the read cache.
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Stdout bool   `toml:"stdout"`
	JSON   bool   `toml:"json"`
}

type DefaultsConfig struct {
	Unit string `toml:"unit"`
}

// Returns the directory holding config and data files.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "suren"), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Default() *Config {
	cfg := &Config{
		Store: StoreConfig{
			Backend:     BackendFile,
			RedisAddr:   "localhost:6379",
			RedisPrefix: "suren:",
		},
		Log:      LogConfig{Level: "info"},
		Defaults: DefaultsConfig{Unit: "kg"},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Store.Path = filepath.Join(dir, "store.json")
	} else {
		cfg.Store.Path = "store.json"
	}
	return cfg
}

// Reads the configuration from path, or from the default location when path
// is empty. A missing file yields the defaults. Environment variables (and a
// .env file in the working directory) override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SUREN_STORE_BACKEND"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("SUREN_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("SUREN_DATABASE_URL"); v != "" {
		cfg.Store.URL = v
	} else if v := os.Getenv("TURSO_DATABASE_URL"); v != "" && cfg.Store.URL == "" {
		cfg.Store.URL = v
	}
	if v := os.Getenv("SUREN_REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("SUREN_REDIS_PASSWORD"); v != "" {
		cfg.Store.RedisPassword = v
	}
	if v := os.Getenv("SUREN_CACHE_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SUREN_CACHE_MB %q: %w", v, err)
		}
		cfg.Store.CacheMB = mb
	}
	if v := os.Getenv("SUREN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Store.Backend = BackendFile
		cfg.Store.Path = "./local.json"
	}

	return nil
}

// Writes cfg as TOML to path, creating the parent directory. An existing file
// is only replaced when overwrite is set.
func SaveConfig(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
