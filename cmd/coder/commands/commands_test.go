package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/coder-go/cmd/coder/commands"
	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

var fixtures = map[string]string{
	"/api/users/me":                `{"id":"u1","username":"ada","name":"Ada","email":"ada@example.com","roles":["site-admin"]}`,
	"/api/users":                   `[{"id":"u1","username":"ada"},{"id":"u2","username":"grace"}]`,
	"/api/orgs":                    `[{"id":"default","name":"Default","default":true,"environment_count":3}]`,
	"/api/orgs/namespaces":         `["coder-default"]`,
	"/api/orgs/default/members/u1": `{"id":"u1","username":"ada","organization_roles":["organization-admin"]}`,
	"/api/orgs/default/members/u1/environments": `[{"id":"e1","name":"dev","auto_off_threshold":3600000}]`,
	"/api/orgs/default/services":                `[]`,
	"/api/registries":                           `[{"id":"r1","friendly_name":"Docker Hub","registry":"index.docker.io"}]`,
	"/api/images/i1":                            `{"id":"i1","repository":"codercom/ubuntu"}`,
	"/api/images/i1/tags/latest":                `{"image_id":"i1","tag":"latest","os_release":{"pretty_name":"Ubuntu 20.04"}}`,
	"/api/environments/e1":                      `{"id":"e1","name":"dev","auto_off_threshold":3600000}`,
}

type manager struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []string
}

func newManager(t *testing.T) *manager {
	t.Helper()

	m := &manager{}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests = append(m.requests, r.URL.RequestURI())
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if r.Header.Get("Session-Token") != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"msg":"invalid session token","code":"unauthorized"}}`))

			return
		}

		body, ok := fixtures[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"msg":"not found","code":"not_found"}}`))

			return
		}

		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(m.server.Close)

	return m
}

func (m *manager) seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.requests...)
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	root := commands.NewRootCommand("1.2.3", "abc123", "2026-01-01")

	var stdout bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err := root.Execute()

	return stdout.String(), err
}

func runAgainst(t *testing.T, m *manager, args ...string) (string, error) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	return run(t, configPath, append([]string{"--url", m.server.URL, "--token", "test-token"}, args...)...)
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	root := commands.NewRootCommand("dev", "none", "unknown")
	assert.Equal(t, "coder", root.Use)

	for _, name := range []string{"version", "config", "login", "users", "orgs", "envs", "images", "registries", "overview"} {
		assert.NotNil(t, findSubcommand(root, name), "command %s should exist", name)
	}

	for _, flagName := range []string{"config", "url", "token", "output", "timeout", "debug", "log-level", "log-format", "user-agent"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flagName), "flag %s should exist", flagName)
	}
}

func TestSubcommands(t *testing.T) {
	t.Parallel()

	root := commands.NewRootCommand("dev", "none", "unknown")

	tests := []struct {
		group    string
		expected []string
	}{
		{"users", []string{"list", "get", "me"}},
		{"orgs", []string{"list", "get", "namespaces", "members", "member", "envs", "images", "registries", "services", "service"}},
		{"envs", []string{"get", "member"}},
		{"images", []string{"get", "tags", "tag"}},
		{"registries", []string{"list", "get"}},
		{"config", []string{"show", "get", "set"}},
	}

	for _, tt := range tests {
		group := findSubcommand(root, tt.group)
		require.NotNil(t, group, tt.group)
		assert.Len(t, group.Commands(), len(tt.expected), tt.group)

		for _, name := range tt.expected {
			sub := findSubcommand(group, name)
			if assert.NotNil(t, sub, "%s %s should exist", tt.group, name) {
				assert.NotNil(t, sub.RunE)
				assert.NotNil(t, sub.Args)
			}
		}
	}

	images := findSubcommand(findSubcommand(root, "images"), "get")
	envsFlag := images.Flags().Lookup("envs")
	require.NotNil(t, envsFlag)
	assert.Equal(t, "false", envsFlag.DefValue)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, filepath.Join(t.TempDir(), "config.yml"), "version", "--output", "json")
	require.NoError(t, err)

	var info commands.VersionInfo

	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.SDKVersion)
}

func TestUsersMe(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "users", "me", "--output", "json")
	require.NoError(t, err)

	var user coder.User

	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, []string{"/api/users/me"}, m.seen())
}

func TestUsersListTable(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "grace")
}

func TestOrgsMemberYAML(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "orgs", "member", "default", "u1", "-o", "yaml")
	require.NoError(t, err)

	var member map[string]interface{}

	require.NoError(t, yaml.Unmarshal([]byte(out), &member))
	assert.Equal(t, "u1", member["id"])
	assert.Equal(t, "ada", member["username"])
	assert.Equal(t, []interface{}{"organization-admin"}, member["organization_roles"])
}

func TestEnvsMember(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "envs", "member", "default", "u1", "-o", "json")
	require.NoError(t, err)

	var envs []coder.Environment

	require.NoError(t, json.Unmarshal([]byte(out), &envs))
	require.Len(t, envs, 1)
	assert.Equal(t, "dev", envs[0].Name)
	assert.Equal(t, []string{"/api/orgs/default/members/u1/environments"}, m.seen())
}

func TestImagesGetWithEnvs(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	_, err := runAgainst(t, m, "images", "get", "i1", "--envs")
	require.NoError(t, err)
	assert.Equal(t, []string{"/api/images/i1?envs=true"}, m.seen())
}

func TestImagesTag(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "images", "tag", "i1", "latest")
	require.NoError(t, err)
	assert.Contains(t, out, "Ubuntu 20.04")
}

func TestEmptyList(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "orgs", "services", "default")
	require.NoError(t, err)
	assert.Equal(t, "No services found\n", out)

	out, err = runAgainst(t, m, "orgs", "services", "default", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestAPIErrorIsReported(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	_, err := runAgainst(t, m, "registries", "get", "missing")
	require.Error(t, err)
	assert.True(t, coder.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get registry")
}

func TestEmptyIDFailsWithoutRequest(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	_, err := runAgainst(t, m, "envs", "get", "")
	require.ErrorIs(t, err, coder.ErrURLComposition)
	assert.Empty(t, m.seen())
}

func TestMissingCredentials(t *testing.T) {
	t.Parallel()

	_, err := run(t, filepath.Join(t.TempDir(), "config.yml"), "--url", "", "users", "list")
	require.Error(t, err)
}

func TestOverview(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	out, err := runAgainst(t, m, "overview", "-o", "json")
	require.NoError(t, err)

	var overview commands.Overview

	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	assert.Equal(t, "ada", overview.User.Username)
	assert.Len(t, overview.Organizations, 1)
	assert.Len(t, overview.Registries, 1)
	assert.Equal(t, []string{"coder-default"}, overview.Namespaces)
	assert.ElementsMatch(t, []string{"/api/users/me", "/api/orgs", "/api/registries", "/api/orgs/namespaces"}, m.seen())
}

func TestConfigSetAndShow(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	_, err := run(t, configPath, "config", "set", "output", "yaml")
	require.NoError(t, err)

	_, err = run(t, configPath, "config", "set", "token", "stored-secret")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: yaml")

	out, err := run(t, configPath, "config", "get", "token")
	require.NoError(t, err)
	assert.Equal(t, "***\n", out)

	out, err = run(t, configPath, "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "stored-secret")

	_, err = run(t, configPath, "config", "set", "colour", "true")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	root := commands.NewRootCommand("dev", "none", "unknown")

	var stdout bytes.Buffer

	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("test-token\n"))
	root.SetArgs([]string{"--config", configPath, "login", m.server.URL})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "as ada")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token: test-token")
	assert.Contains(t, string(data), "url: "+m.server.URL)

	out, err := run(t, configPath, "users", "me", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"username": "ada"`)
}

func TestLoginDoesNotPersistEnvironment(t *testing.T) {
	t.Setenv("CODER_OUTPUT", "yaml")
	t.Setenv("CODER_LOGGING_LEVEL", "debug")

	m := newManager(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("user_agent: custom-agent\n"), 0o600))

	root := commands.NewRootCommand("dev", "none", "unknown")
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("test-token\n"))
	root.SetArgs([]string{"--config", configPath, "login", m.server.URL})

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "token: test-token")
	assert.Contains(t, string(data), "user_agent: custom-agent")
	assert.Contains(t, string(data), "output: table")
	assert.Contains(t, string(data), "level: info")
	assert.NotContains(t, string(data), "output: yaml")
	assert.NotContains(t, string(data), "level: debug")
}

func TestLoginRejectsBadToken(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	_, err := run(t, configPath, "login", m.server.URL, "--token", "wrong")
	require.Error(t, err)
	assert.True(t, coder.IsUnauthorized(err))

	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr))
}
