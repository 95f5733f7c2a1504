package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupProjectWithFiles(t *testing.T) {
	files := map[string]string{
		"config/app.yml":  "default: {}\n",
		"config/app.json": "{}",
		"README.md":       "# project\n",
	}

	dir := SetupProjectWithFiles(t, files)

	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "file %s should exist", name)
		assert.Equal(t, content, string(data))
	}
}

func TestWriteFile_ReturnsAbsolutePath(t *testing.T) {
	dir := SetupProject(t)

	path := WriteString(t, dir, "nested/dir/config.ini", "a = 1\n")

	assert.True(t, filepath.IsAbs(path))
	assert.FileExists(t, path)
}

func TestWriteYAMLAndJSON(t *testing.T) {
	dir := SetupProject(t)
	v := map[string]any{"default": map[string]any{"test": map[string]any{"foo": "bar"}}}

	yml := WriteYAML(t, dir, "config.yml", v)
	js := WriteJSON(t, dir, "config.json", v)

	data, err := os.ReadFile(yml)
	require.NoError(t, err)
	assert.Contains(t, string(data), "foo: bar")

	data, err = os.ReadFile(js)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"foo": "bar"`)
}

func TestTestContext(t *testing.T) {
	ctx := TestContext(t)
	require.NotNil(t, ctx)

	select {
	case <-ctx.Done():
		t.Error("context should not be done yet")
	default:
	}
}

func TestTestContextWithTimeout(t *testing.T) {
	ctx := TestContextWithTimeout(t, 10*time.Millisecond)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("context should have timed out")
	}
}
