//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	ManagerURL string
	APIKey     string
	OrgID      string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	orgID := os.Getenv("CODER_TEST_ORG")
	if orgID == "" {
		orgID = "default"
	}

	return &TestConfig{
		ManagerURL: os.Getenv("MANAGER_URL"),
		APIKey:     os.Getenv("API_KEY"),
		OrgID:      orgID,
		Verbose:    os.Getenv("CODER_VERBOSE") == "true",
	}
}

// newClient returns a client for the configured manager, skipping the test
// when no manager is configured.
func newClient(t *testing.T) (*coder.Client, *TestConfig) {
	t.Helper()

	cfg := LoadTestConfig()
	if cfg.ManagerURL == "" || cfg.APIKey == "" {
		t.Skip("MANAGER_URL and API_KEY must be set for integration tests")
	}

	var opts []coder.Option
	if cfg.Verbose {
		opts = append(opts, coder.WithLogger(testLogger{t}), coder.WithDebug(true))
	}

	client, err := coder.New(cfg.ManagerURL, cfg.APIKey, opts...)
	require.NoError(t, err)

	return client, cfg
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) log(level, msg string, fields map[string]interface{}) {
	l.t.Logf("[%s] %s %v", level, msg, fields)
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }
