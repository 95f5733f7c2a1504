package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/envconf/testutil"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Get(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "config.yml", testutil.EnvironmentsYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default section", []string{"get", "test", "hello"}, "world\n"},
		{"environment override", []string{"--env", "production", "get", "test", "hello"}, "world2\n"},
		{"extends chain", []string{"--env", "development", "get", "test", "key"}, "staging_key\n"},
		{"alias", []string{"--env", "prod", "get", "test", "hello"}, "world2\n"},
		{"unknown environment falls back", []string{"--env", "asdf", "get", "test", "hello"}, "world\n"},
		{"section as map", []string{"get", "test"}, "foo: bar\nhello: world\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--project-dir", dir}, tt.args...)
			code, out, errOut := runCLI(t, args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRun_Path(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "config.yml", testutil.EnvironmentsYAML)

	code, out, errOut := runCLI(t, "--project-dir", dir, "path", "paths", "cache")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, filepath.Join(dir, "var/cache")+"\n", out)

	code, out, errOut = runCLI(t, "--project-dir", dir, "path", "paths", "logs")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "/var/log/app\n", out)
}

func TestRun_Envs(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "config.yml", testutil.EnvironmentsYAML)

	code, out, errOut := runCLI(t, "--project-dir", dir, "--env", "development", "envs")
	require.Equal(t, 0, code, errOut)

	assert.Contains(t, out, "* development\textends staging\n")
	assert.Contains(t, out, "  prod\talias production\n")
	assert.Contains(t, out, "  production\t\n")
	assert.Contains(t, out, "  broken\terror: ")
}

func TestRun_Dump(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "config.yml", testutil.EnvironmentsYAML)

	code, out, errOut := runCLI(t, "--project-dir", dir, "--env", "production", "--format", "json", "dump")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"hello": "world2"`)
	assert.Contains(t, out, `"foo": "bar"`)
}

func TestRun_SettingsFromEnvironment(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "settings.yml", testutil.EnvironmentsYAML)
	t.Setenv("ENVCONF_PROJECT_DIR", dir)
	t.Setenv("ENVCONF_FILE", "settings.yml")
	t.Setenv("ENVCONF_ENV", "staging")

	code, out, errOut := runCLI(t, "get", "test", "hello")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "staging\n", out)

	// Flags win over the environment.
	code, out, errOut = runCLI(t, "--env", "production", "get", "test", "hello")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "world2\n", out)
}

func TestRun_Failures(t *testing.T) {
	dir := testutil.SetupProjectWithConfig(t, "config.yml", testutil.EnvironmentsYAML)

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"missing command", []string{"--project-dir", dir}, 2, "missing command"},
		{"unknown command", []string{"--project-dir", dir, "frob"}, 2, `unknown command "frob"`},
		{"bad operands", []string{"--project-dir", dir, "get", "a", "b", "c"}, 2, "expected [section] <key>"},
		{"bad flag", []string{"--no-such-flag"}, 2, "Invalid command line."},
		{"missing file", []string{"--project-dir", dir, "--file", "nope.yml", "envs"}, 1, "Configuration file not found"},
		{"missing value", []string{"--project-dir", dir, "get", "test", "nope"}, 1, "Setting test.nope is not defined."},
		{"broken alias", []string{"--project-dir", dir, "--env", "broken", "get", "test", "hello"}, 1, `Environment "broken" cannot be resolved.`},
		{"bad dump format", []string{"--project-dir", dir, "--format", "xml", "dump"}, 2, `unsupported dump format "xml"`},
		{"bad dump format without config", []string{"--project-dir", dir, "--file", "nope.yml", "--format", "xml", "dump"}, 2, "Invalid command line."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.wantStderr)
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, errOut := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, errOut, "Usage: envconf")
}
