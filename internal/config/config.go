// Package config loads the app's environment configuration.
//
// Values come from the process environment, falling back to a dotenv file
// (.env in the working directory, or the file named by ENVFILE). They are
// displayed verbatim; the only interpretation is the debug flag.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvFileEnv names the env var that selects a dotenv file.
	EnvFileEnv = "ENVFILE"
	// DefaultEnvFile is read when present and no other file is selected.
	DefaultEnvFile = ".env"
)

// Keys read from the environment, in display order.
const (
	KeyAppName     = "APP_NAME"
	KeyAPIURL      = "API_URL"
	KeyAPIKey      = "API_KEY"
	KeyEnableDebug = "ENABLE_DEBUG"
	KeyLogLevel    = "LOG_LEVEL"
	KeyLogFile     = "LOG_FILE"
)

var keys = []string{KeyAppName, KeyAPIURL, KeyAPIKey, KeyEnableDebug, KeyLogLevel, KeyLogFile}

// Config holds the string values supplied by the environment.
type Config struct {
	AppName     string `mapstructure:"app_name"`
	APIURL      string `mapstructure:"api_url"`
	APIKey      string `mapstructure:"api_key"`
	EnableDebug string `mapstructure:"enable_debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`

	// EnvFile is the dotenv file that was read, empty if none.
	EnvFile string `mapstructure:"-"`
}

// DebugEnabled reports whether ENABLE_DEBUG is exactly "true".
func (c Config) DebugEnabled() bool {
	return c.EnableDebug == "true"
}

// MaskedAPIKey returns the API key with all but the last four characters
// hidden, or "" if unset.
func (c Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return ""
	}
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// Load reads configuration. envFile selects the dotenv file; when empty,
// ENVFILE is consulted, then DefaultEnvFile. An explicitly selected file must
// exist; the default file is optional. Environment variables override file
// values.
func Load(envFile string) (Config, error) {
	v := viper.New()
	for _, k := range keys {
		v.SetDefault(strings.ToLower(k), "")
	}

	explicit := true
	if envFile == "" {
		envFile = os.Getenv(EnvFileEnv)
	}
	if envFile == "" {
		envFile = DefaultEnvFile
		explicit = false
	}

	used := ""
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		used = envFile
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("env file %s: %w", envFile, err)
	}

	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.EnvFile = used
	return c, nil
}

// Entry is one key/value pair for display.
type Entry struct {
	Key   string
	Value string
}

// Entries returns every known key with its value, secrets masked.
func (c Config) Entries() []Entry {
	return []Entry{
		{KeyAppName, c.AppName},
		{KeyAPIURL, c.APIURL},
		{KeyAPIKey, c.MaskedAPIKey()},
		{KeyEnableDebug, c.EnableDebug},
		{KeyLogLevel, c.LogLevel},
		{KeyLogFile, c.LogFile},
	}
}
