package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/coder-go/internal/config"
	"github.com/fivetwenty-io/coder-go/internal/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.URL)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, constants.FormatTable, cfg.Output)
	assert.Equal(t, constants.DefaultHTTPTimeout, cfg.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, constants.FormatConsole, cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.False(t, cfg.Logging.Debug)

	require.ErrorIs(t, cfg.Validate(), constants.ErrManagerURLRequired)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
url: https://coder.example.com
token: file-token
output: json
timeout: 5s
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://coder.example.com", cfg.URL)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, constants.FormatJSON, cfg.Output)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
	assert.Equal(t, path, cfg.Path)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MANAGER_URL", "https://legacy.example.com")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("CODER_OUTPUT", "yaml")
	t.Setenv("CODER_LOGGING_LEVEL", "warn")

	path := writeConfig(t, "url: https://file.example.com\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://legacy.example.com", cfg.URL)
	assert.Equal(t, "legacy-key", cfg.Token)
	assert.Equal(t, constants.FormatYAML, cfg.Output)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_PrefixedEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CODER_URL", "https://primary.example.com")
	t.Setenv("MANAGER_URL", "https://legacy.example.com")
	t.Setenv("CODER_TOKEN", "primary-token")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://primary.example.com", cfg.URL)
	assert.Equal(t, "primary-token", cfg.Token)
}

func TestLoad_InvalidSettings(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"log level", "logging:\n  level: loud\n", constants.ErrInvalidLogLevel},
		{"log format", "logging:\n  format: xml\n", constants.ErrInvalidLogFormat},
		{"output", "output: csv\n", constants.ErrInvalidOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(writeConfig(t, "url: [unterminated\n"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	base := config.Config{
		URL:     "https://coder.example.com",
		Token:   "token",
		Output:  constants.FormatTable,
		Logging: config.LoggingConfig{Level: "info", Format: constants.FormatConsole},
	}

	require.NoError(t, base.Validate())

	noToken := base
	noToken.Token = ""
	require.ErrorIs(t, noToken.Validate(), constants.ErrTokenRequired)

	badURL := base
	badURL.URL = "coder.example.com"
	require.ErrorIs(t, badURL.Validate(), constants.ErrInvalidURL)
}

func TestConfig_SetGet(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Output:  constants.FormatTable,
		Logging: config.LoggingConfig{Level: "info", Format: constants.FormatConsole},
	}

	require.NoError(t, cfg.Set("url", "https://coder.example.com/"))
	require.NoError(t, cfg.Set("timeout", "45s"))
	require.NoError(t, cfg.Set("logging.debug", "true"))
	require.NoError(t, cfg.Set("OUTPUT", "JSON"))

	assert.Equal(t, "https://coder.example.com", cfg.URL)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, constants.FormatJSON, cfg.Output)

	for _, key := range config.Keys {
		_, err := cfg.Get(key)
		require.NoError(t, err, key)
	}

	value, err := cfg.Get("timeout")
	require.NoError(t, err)
	assert.Equal(t, "45s", value)

	require.ErrorIs(t, cfg.Set("colour", "true"), constants.ErrUnknownConfigKey)
	require.ErrorIs(t, cfg.Set("output", "csv"), constants.ErrInvalidOutput)
	require.Error(t, cfg.Set("timeout", "soon"))
	require.Error(t, cfg.Set("logging.color", "maybe"))

	_, err = cfg.Get("colour")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestConfig_Masked(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Token: "secret"}
	masked := cfg.Masked()

	assert.Equal(t, constants.MaskedSecret, masked.Token)
	assert.Equal(t, "secret", cfg.Token)

	empty := config.Config{}
	assert.Empty(t, empty.Masked().Token)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.Set("url", "https://coder.example.com"))
	require.NoError(t, cfg.Set("token", "saved-token"))
	require.NoError(t, cfg.Set("timeout", "12s"))
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	reloaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://coder.example.com", reloaded.URL)
	assert.Equal(t, "saved-token", reloaded.Token)
	assert.Equal(t, 12*time.Second, reloaded.Timeout)
}

func TestLoadFile_IgnoresEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MANAGER_URL", "https://env.example.com")
	t.Setenv("CODER_OUTPUT", "json")
	t.Setenv("CODER_LOGGING_LEVEL", "error")

	path := writeConfig(t, "url: https://file.example.com\n")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com", cfg.URL)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, constants.FormatTable, cfg.Output)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, path, cfg.Path)
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"MANAGER_URL", "API_KEY", "CODER_URL", "CODER_TOKEN", "CODER_OUTPUT",
		"CODER_TIMEOUT", "CODER_LOGGING_LEVEL", "CODER_LOGGING_FORMAT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadWithFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("MANAGER_URL", "https://env.example.com")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("url", "", "")
	flags.String("token", "", "")
	flags.String("output", "", "")
	flags.Duration("timeout", 0, "")
	flags.Bool("debug", false, "")

	require.NoError(t, flags.Parse([]string{"--url", "https://flag.example.com", "--debug", "--timeout", "3s"}))

	path := writeConfig(t, "token: file-token\noutput: yaml\n")

	cfg, err := config.LoadWithFlags(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", cfg.URL)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, constants.FormatYAML, cfg.Output)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.Logging.Debug)
}
