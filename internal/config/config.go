package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/mernkit/create-mern/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised configuration keys.
const (
	KeyInstaller   = "installer"
	KeyDefaultName = "default_name"
	KeyBackendPort = "backend_port"
	KeyClientPort  = "client_port"
	KeyMongoHost   = "mongo_host"
)

var defaultValues = map[string]any{
	KeyInstaller:   "npm",
	KeyDefaultName: branding.DefaultProjectName(),
	KeyBackendPort: 5000,
	KeyClientPort:  5173,
	KeyMongoHost:   "127.0.0.1:27017",
}

// Settings is the decoded view of the configuration.
type Settings struct {
	Installer   string `mapstructure:"installer"`
	DefaultName string `mapstructure:"default_name"`
	BackendPort int    `mapstructure:"backend_port"`
	ClientPort  int    `mapstructure:"client_port"`
	MongoHost   string `mapstructure:"mongo_host"`
}

// Dir returns the path to the config directory (~/.create-mern/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-mern/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns the recognised configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnown reports whether key is a recognised configuration key.
func IsKnown(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current decodes the loaded configuration and validates it.
func Current() (*Settings, error) {
	return decode(viper.GetViper())
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if s.Installer == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyInstaller)
	}
	for key, port := range map[string]int{KeyBackendPort: s.BackendPort, KeyClientPort: s.ClientPort} {
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("%s must be between 1 and 65535, got %d", key, port)
		}
	}
	return &s, nil
}

// Set validates a config key-value pair and saves it to the config file.
// Only keys already in the file and the one being set are written; defaults
// and environment overrides stay out of it. Nothing is written when the
// resulting configuration is invalid.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	var typed any = value
	if key == KeyBackendPort || key == KeyClientPort {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number, got %q", key, value)
		}
		typed = port
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	file.Set(key, typed)

	candidate := viper.New()
	for k, v := range defaultValues {
		candidate.SetDefault(k, v)
	}
	if err := candidate.MergeConfigMap(file.AllSettings()); err != nil {
		return fmt.Errorf("merging config: %w", err)
	}
	if _, err := decode(candidate); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, typed)
	return nil
}
