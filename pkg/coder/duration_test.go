package coder

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	t.Parallel()

	day := Duration(24 * time.Hour)

	data, err := json.Marshal(day)
	require.NoError(t, err)
	assert.Equal(t, "86400000", string(data))

	var decoded Duration

	require.NoError(t, json.Unmarshal([]byte("86400000"), &decoded))
	assert.Equal(t, 24*time.Hour, decoded.Std())
	assert.Equal(t, int64(86400000), decoded.Milliseconds())
	assert.Equal(t, "24h0m0s", decoded.String())
}

func TestDuration_InvalidJSON(t *testing.T) {
	t.Parallel()

	var decoded Duration

	require.Error(t, json.Unmarshal([]byte(`"8h"`), &decoded))
}

func TestDuration_InEnvironment(t *testing.T) {
	t.Parallel()

	var env Environment

	require.NoError(t, json.Unmarshal([]byte(`{"id":"e1","auto_off_threshold":3600000}`), &env))
	assert.Equal(t, time.Hour, env.AutoOffThreshold.Std())

	out, err := yaml.Marshal(map[string]Duration{"threshold": env.AutoOffThreshold})
	require.NoError(t, err)
	assert.Equal(t, "threshold: 3600000\n", string(out))
}

func TestDuration_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	type settings struct {
		Threshold Duration `yaml:"threshold"`
	}

	out, err := yaml.Marshal(settings{Threshold: Duration(90 * time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, "threshold: 5400000\n", string(out))

	var decoded settings

	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 90*time.Minute, decoded.Threshold.Std())

	var invalid settings

	require.Error(t, yaml.Unmarshal([]byte("threshold: 8h\n"), &invalid))
}
