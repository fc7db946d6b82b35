package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/projtools/projtools/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyFrontendType   = "frontend_type"
	KeyDefaultVersion = "default_version"
	KeyAuthorName     = "author.name"
	KeyAuthorEmail    = "author.email"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// Built-in defaults applied before the config file and environment.
var defaults = map[string]string{
	KeyFrontendType:   "reactjs",
	KeyDefaultVersion: "0.1.0",
	KeyAuthorName:     "Your Name",
	KeyAuthorEmail:    "your.email@example.com",
	KeyLogLevel:       "warn",
	KeyLogFormat:      "text",
}

// Dir returns the path to the config directory. PROJTOOLS_HOME overrides
// the default of ~/.projtools/.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.projtools/config.yaml).
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
// Nested keys map to env vars with underscores, e.g. author.name is read
// from PROJTOOLS_AUTHOR_NAME.
func Load() {
	viper.Reset()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns every key with a built-in default, for help output.
func Keys() []string {
	return []string{
		KeyFrontendType,
		KeyDefaultVersion,
		KeyAuthorName,
		KeyAuthorEmail,
		KeyLogLevel,
		KeyLogFormat,
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
