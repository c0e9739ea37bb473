package config

// Viper configuration loader: reads config.yaml from the user config dir or cwd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// DefaultStorageKey is the key the task collection is stored under
const DefaultStorageKey = "my-todo"

// Config holds all application configuration loaded from config.yaml
type Config struct {
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging"`

	Storage struct {
		Backend      string        `mapstructure:"backend"` // "memory", "file", "redis"
		Key          string        `mapstructure:"key"`
		Dir          string        `mapstructure:"dir"` // file backend; empty = data dir
		WriteTimeout time.Duration `mapstructure:"writeTimeout"`

		Redis struct {
			Addr     string `mapstructure:"addr"`
			Password string `mapstructure:"password"`
			DB       int    `mapstructure:"db"`
			Prefix   string `mapstructure:"prefix"`
		} `mapstructure:"redis"`
	} `mapstructure:"storage"`

	Store struct {
		IDScheme string `mapstructure:"idScheme"` // "nanoid" or "uuid"
	} `mapstructure:"store"`

	Header struct {
		Visible bool `mapstructure:"visible"`
	} `mapstructure:"header"`
}

// LoadConfig loads configuration using the process arguments for flag overrides.
func LoadConfig() (*Config, error) {
	return LoadConfigWithArgs(os.Args[1:])
}

// LoadConfigWithArgs loads configuration from config.yaml, TADA_* environment
// variables and the given command line arguments, in increasing priority.
// A missing config.yaml is not an error; defaults are used.
func LoadConfigWithArgs(args []string) (*Config, error) {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// first added = highest priority
	viper.AddConfigPath(GetConfigDir())
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	viper.SetEnvPrefix("TADA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(args); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")

	viper.SetDefault("storage.backend", BackendFile)
	viper.SetDefault("storage.key", DefaultStorageKey)
	viper.SetDefault("storage.dir", "")
	viper.SetDefault("storage.writeTimeout", 5*time.Second)
	viper.SetDefault("storage.redis.addr", "localhost:6379")
	viper.SetDefault("storage.redis.password", "")
	viper.SetDefault("storage.redis.db", 0)
	viper.SetDefault("storage.redis.prefix", "tada:")

	viper.SetDefault("store.idScheme", IDSchemeNanoID)

	viper.SetDefault("header.visible", true)
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags(args []string) error {
	flagSet := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SetOutput(io.Discard)

	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("backend", "", "Storage backend (memory, file, redis)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := viper.BindPFlag("logging.level", flagSet.Lookup("log-level")); err != nil {
		return err
	}
	return viper.BindPFlag("storage.backend", flagSet.Lookup("backend"))
}

func validate(cfg *Config) error {
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("invalid storage.backend %q: must be one of memory, file, redis", cfg.Storage.Backend)
	}

	cfg.Store.IDScheme = strings.ToLower(strings.TrimSpace(cfg.Store.IDScheme))
	switch cfg.Store.IDScheme {
	case IDSchemeNanoID, IDSchemeUUID:
	default:
		return fmt.Errorf("invalid store.idScheme %q: must be nanoid or uuid", cfg.Store.IDScheme)
	}

	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultStorageKey
	}
	if cfg.Storage.WriteTimeout <= 0 {
		cfg.Storage.WriteTimeout = 5 * time.Second
	}
	return nil
}

// StorageDir returns the directory used by the file backend
func (c *Config) StorageDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return GetDataDir()
}

// SaveHeaderVisible saves the header visibility setting to config.yaml.
// Only header.visible is written; flag and environment overrides stay out of the file.
func SaveHeaderVisible(visible bool) error {
	viper.Set("header.visible", visible)
	return setConfigFileValue("header", "visible", visible)
}

// GetHeaderVisible returns the header visibility setting
func GetHeaderVisible() bool {
	return viper.GetBool("header.visible")
}

// setConfigFileValue rewrites a single section.key in config.yaml, keeping
// every other value as it is on disk
func setConfigFileValue(section, key string, value any) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = GetConfigFile()
	}

	doc := map[string]any{}
	data, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", configFile, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("read %s: %w", configFile, err)
	}

	sectionValues, _ := doc[section].(map[string]any)
	if sectionValues == nil {
		sectionValues = map[string]any{}
	}
	sectionValues[key] = value
	doc[section] = sectionValues

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling config.yaml: %w", err)
	}

	//nolint:gosec // G301: 0755 is appropriate for config directory
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	//nolint:gosec // G306: 0644 is appropriate for config file
	if err := os.WriteFile(configFile, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	return nil
}

// defaultConfigFile is the shape of the config.yaml written on first run
type defaultConfigFile struct {
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
	Storage struct {
		Backend      string `yaml:"backend"`
		Key          string `yaml:"key"`
		WriteTimeout string `yaml:"writeTimeout"`
		Redis        struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"storage"`
	Store struct {
		IDScheme string `yaml:"idScheme"`
	} `yaml:"store"`
	Header struct {
		Visible bool `yaml:"visible"`
	} `yaml:"header"`
}

// InstallDefaultConfig writes a default config.yaml into the
// user config dir unless one already exists. Returns the path written, or ""
// when a file was already present.
func InstallDefaultConfig() (string, error) {
	path := GetConfigFile()
	if _, err := os.Stat(path); err == nil {
		return "", nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	var fc defaultConfigFile
	fc.Logging.Level = "error"
	fc.Storage.Backend = BackendFile
	fc.Storage.Key = DefaultStorageKey
	fc.Storage.WriteTimeout = "5s"
	fc.Storage.Redis.Addr = "localhost:6379"
	fc.Storage.Redis.Prefix = "tada:"
	fc.Store.IDScheme = IDSchemeNanoID
	fc.Header.Visible = true

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return "", fmt.Errorf("marshaling config.yaml: %w", err)
	}

	//nolint:gosec // G301: 0755 is appropriate for config directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	//nolint:gosec // G306: 0644 is appropriate for config file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing config.yaml: %w", err)
	}
	return path, nil
}
