package testutil

import (
	"testing"
)

// SetupProject creates an empty project directory for the test.
// It is removed automatically when the test ends.
func SetupProject(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// SetupProjectWithFiles creates a project directory containing files.
// Keys are paths relative to the project root.
func SetupProjectWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := SetupProject(t)
	for name, content := range files {
		WriteString(t, dir, name, content)
	}
	return dir
}

// SetupProjectWithConfig creates a project directory with a single
// configuration file and returns the directory.
func SetupProjectWithConfig(t *testing.T, name, content string) string {
	t.Helper()
	return SetupProjectWithFiles(t, map[string]string{name: content})
}

// EnvironmentsYAML is a configuration exercising default fallback,
// alias and extends chains.
const EnvironmentsYAML = `default:
  test:
    hello: world
    foo: bar
  paths:
    cache: var/cache
    logs: /var/log/app
environments:
  production:
    test:
      hello: world2
  staging:
    test:
      key: staging_key
      hello: staging
  development:
    extends: staging
    test:
      hello: dev
  prod:
    alias: production
  broken:
    alias: staging2
`
