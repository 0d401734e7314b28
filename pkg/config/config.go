package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type Config struct {
	DatabaseBusyTimeout       time.Duration `koanf:"-"`
	DatabaseConnectRetryCount int           `koanf:"-"`
	DatabaseConnectRetryDelay time.Duration `koanf:"-"`
	DatabaseDebug             bool          `koanf:"database_debug"`
	DatabaseFilePath          string        `koanf:"database_file_path"`
	Environment               string        `koanf:"environment"`
	Hostname                  string        `koanf:"-"`
	ServerHost                string        `koanf:"server_host"`
	ServerPort                int           `koanf:"server_port"`
}

// configPathENV overrides where the optional YAML config file is looked up.
const configPathENV = "LEAFLOG_CONFIG"

var defaultConfigPaths = []string{
	"leaflog.yaml",
	"/etc/leaflog/config.yaml",
}

// New loads configuration in layers: built-in defaults, then an optional YAML
// file, then environment variables. Later layers win.
func New() (*Config, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg := &Config{
		DatabaseBusyTimeout:       5 * time.Second,
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseFilePath:          "./tmp/data.sqlite",
		Environment:               "development",
		Hostname:                  hostname,
		ServerHost:                "127.0.0.1",
		ServerPort:                4264,
	}

	k := koanf.New(".")

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	switch cfg.Environment {
	case "development", "":
		cfg.Environment = "development"
		cfg.DatabaseDebug = true
	case "test":
		loadTestConfig(cfg)
	case "production":
		cfg.ServerHost = "0.0.0.0"
	default:
		return nil, errors.Errorf("unknown environment: %s", cfg.Environment)
	}

	return cfg, nil
}

// envKey maps known environment variables to config keys. Unknown variables
// are skipped so the process environment can't pollute the config.
func envKey(key string) string {
	known := map[string]string{
		"DATABASE_DEBUG":     "database_debug",
		"DATABASE_FILE_PATH": "database_file_path",
		"ENVIRONMENT":        "environment",
		"HOST":               "server_host",
		"PORT":               "server_port",
	}
	if mapped, ok := known[strings.ToUpper(key)]; ok {
		return mapped
	}
	return ""
}

func findConfigFile() string {
	if path := os.Getenv(configPathENV); path != "" {
		return path
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
