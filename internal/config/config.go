// Package config loads and persists the command line tool's settings.
//
// Settings come from, in increasing precedence: defaults, the YAML file
// (~/.coder/config.yml unless a path is given), and environment variables
// prefixed with CODER_. MANAGER_URL and API_KEY are accepted for the URL and
// token as well.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/coder-go/internal/constants"
)

const (
	dirName   = ".coder"
	fileName  = "config"
	fileType  = "yml"
	envPrefix = "CODER"
)

// Config holds the CLI settings.
type Config struct {
	URL       string        `json:"url"        mapstructure:"url"        yaml:"url,omitempty"`
	Token     string        `json:"token"      mapstructure:"token"      yaml:"token,omitempty"`
	Output    string        `json:"output"     mapstructure:"output"     yaml:"output"`
	Timeout   time.Duration `json:"timeout"    mapstructure:"timeout"    yaml:"timeout"`
	UserAgent string        `json:"user_agent" mapstructure:"user_agent" yaml:"user_agent,omitempty"`
	Logging   LoggingConfig `json:"logging"    mapstructure:"logging"    yaml:"logging"`

	// Path is the file the configuration was read from or will be saved to.
	Path string `json:"-" mapstructure:"-" yaml:"-"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `json:"level"  mapstructure:"level"  yaml:"level"`
	Format string `json:"format" mapstructure:"format" yaml:"format"`
	Color  bool   `json:"color"  mapstructure:"color"  yaml:"color"`
	Debug  bool   `json:"debug"  mapstructure:"debug"  yaml:"debug"`
}

// Keys lists the settings accepted by Set, in display order.
var Keys = []string{
	"url",
	"token",
	"output",
	"timeout",
	"user_agent",
	"logging.level",
	"logging.format",
	"logging.color",
	"logging.debug",
}

// DefaultPath returns ~/.coder/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, dirName, fileName+"."+fileType), nil
}

// FlagKeys maps command line flag names to the settings they override.
var FlagKeys = map[string]string{
	"url":        "url",
	"token":      "token",
	"output":     "output",
	"timeout":    "timeout",
	"user-agent": "user_agent",
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"debug":      "logging.debug",
}

// Load reads the configuration. A missing file is not an error; the defaults
// and environment are used instead.
func Load(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadFile reads the defaults and the file only. Environment variables are
// ignored so that a configuration read for saving holds nothing but what the
// file already contains.
func LoadFile(path string) (*Config, error) {
	v, path, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return read(v, path)
}

// LoadWithFlags reads the configuration like Load, letting flags that were set
// on the command line take precedence over every other source.
func LoadWithFlags(path string, flags *pflag.FlagSet) (*Config, error) {
	v, path, err := newViper(path)
	if err != nil {
		return nil, err
	}

	if flags != nil {
		for name, key := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}

			err = v.BindPFlag(key, flag)
			if err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("url", envPrefix+"_URL", "MANAGER_URL")
	_ = v.BindEnv("token", envPrefix+"_TOKEN", "API_KEY")

	return read(v, path)
}

func newViper(path string) (*viper.Viper, string, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, "", err
		}

		path = defaultPath
	}

	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType(fileType)

	return v, path, nil
}

func read(v *viper.Viper, path string) (*Config, error) {
	err := v.ReadInConfig()
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Path = path

	err = validateSettings(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("url", "")
	v.SetDefault("token", "")
	v.SetDefault("output", constants.FormatTable)
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("user_agent", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", constants.FormatConsole)
	v.SetDefault("logging.color", true)
	v.SetDefault("logging.debug", false)
}

// Validate checks that the configuration can be used to reach a manager.
func (c *Config) Validate() error {
	if c.URL == "" {
		return constants.ErrManagerURLRequired
	}

	parsed, err := url.Parse(c.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: %s", constants.ErrInvalidURL, c.URL)
	}

	if c.Token == "" {
		return constants.ErrTokenRequired
	}

	return validateSettings(c)
}

func validateSettings(cfg *Config) error {
	validLevels := []string{"debug", "info", "warn", "warning", "error"}
	if !slices.Contains(validLevels, strings.ToLower(cfg.Logging.Level)) {
		return fmt.Errorf("%w: %s", constants.ErrInvalidLogLevel, cfg.Logging.Level)
	}

	validFormats := []string{constants.FormatConsole, constants.FormatJSON}
	if !slices.Contains(validFormats, strings.ToLower(cfg.Logging.Format)) {
		return fmt.Errorf("%w: %s", constants.ErrInvalidLogFormat, cfg.Logging.Format)
	}

	validOutputs := []string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}
	if !slices.Contains(validOutputs, strings.ToLower(cfg.Output)) {
		return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, cfg.Output)
	}

	return nil
}

// Set assigns one setting by key.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "url":
		c.URL = strings.TrimRight(value, "/")
	case "token":
		c.Token = value
	case "output":
		c.Output = strings.ToLower(value)
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		c.Timeout = timeout
	case "user_agent":
		c.UserAgent = value
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.format":
		c.Logging.Format = strings.ToLower(value)
	case "logging.color", "logging.debug":
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s: %w", value, key, err)
		}

		if strings.EqualFold(key, "logging.color") {
			c.Logging.Color = flag
		} else {
			c.Logging.Debug = flag
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return validateSettings(c)
}

// Get returns one setting by key, formatted for display.
func (c *Config) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "url":
		return c.URL, nil
	case "token":
		return c.Token, nil
	case "output":
		return c.Output, nil
	case "timeout":
		return c.Timeout.String(), nil
	case "user_agent":
		return c.UserAgent, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.color":
		return strconv.FormatBool(c.Logging.Color), nil
	case "logging.debug":
		return strconv.FormatBool(c.Logging.Debug), nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

// Masked returns a copy with the token hidden.
func (c *Config) Masked() Config {
	masked := *c
	if masked.Token != "" {
		masked.Token = constants.MaskedSecret
	}

	return masked
}

// Save writes the configuration to c.Path, or the default path when unset.
func (c *Config) Save() error {
	path := c.Path
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}

		path = defaultPath
	}

	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	c.Path = path

	return nil
}
