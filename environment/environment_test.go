package environment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/envconf/document"
)

func newDoc(t *testing.T, yml string) *document.Document {
	t.Helper()
	doc, err := document.DefaultRegistry().Parse("/project/config.yml", []byte(yml))
	require.NoError(t, err)
	return doc
}

const chainsYAML = `default:
  test:
    hello: world
environments:
  production:
    test:
      hello: world2
  empty:
  staging:
    test:
      key: staging_key
      hello: staging
    cache:
      ttl: 60
  development:
    extends: staging
    test:
      hello: dev
  local:
    extends: development
    cache:
      ttl: 0
  prod:
    alias: production
  live:
    alias: prod
  dev2:
    extends: prod
  aliased_with_keys:
    alias: staging
    test:
      hello: ignored
  broken:
    alias: staging2
  orphan:
    extends: nowhere
  loop_a:
    alias: loop_b
  loop_b:
    extends: loop_a
  self:
    extends: self
  scalar: 5
  bad_alias:
    alias: 3
`

func TestResolve_OwnKeys(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	v, err := Resolve(doc, "production")
	require.NoError(t, err)

	got, ok := v.Lookup("test", "hello")
	require.True(t, ok)
	assert.Equal(t, "world2", got)
	assert.Equal(t, "production", v.Name())
	assert.Equal(t, "production", v.Resolved())
	assert.Equal(t, []string{"production"}, v.Chain())
}

func TestResolve_EmptyEnvironment(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	v, err := Resolve(doc, "empty")
	require.NoError(t, err)
	assert.Empty(t, v.Root())

	_, ok := v.Lookup("test", "hello")
	assert.False(t, ok)
}

func TestResolve_ExtendsInheritsAndOverridesPerLeaf(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	v, err := Resolve(doc, "development")
	require.NoError(t, err)

	key, ok := v.Lookup("test", "key")
	require.True(t, ok)
	assert.Equal(t, "staging_key", key, "inherited from staging")

	hello, ok := v.Lookup("test", "hello")
	require.True(t, ok)
	assert.Equal(t, "dev", hello, "overridden by development")

	_, hasExtends := v.Root()[ExtendsKey]
	assert.False(t, hasExtends, "reserved keys are not part of the view")
	assert.Equal(t, []string{"development", "staging"}, v.Chain())
	assert.Equal(t, "development", v.Resolved())
}

func TestResolve_MultiLevelExtends(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	v, err := Resolve(doc, "local")
	require.NoError(t, err)

	ttl, _ := v.Lookup("cache", "ttl")
	assert.Equal(t, int64(0), ttl)
	hello, _ := v.Lookup("test", "hello")
	assert.Equal(t, "dev", hello)
	key, _ := v.Lookup("test", "key")
	assert.Equal(t, "staging_key", key)
	assert.Equal(t, []string{"local", "development", "staging"}, v.Chain())
}

func TestResolve_AliasIsRedirect(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	tests := []struct {
		name     string
		resolved string
		chain    []string
		hello    string
	}{
		{"prod", "production", []string{"prod", "production"}, "world2"},
		{"live", "production", []string{"live", "prod", "production"}, "world2"},
		{"aliased_with_keys", "staging", []string{"aliased_with_keys", "staging"}, "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Resolve(doc, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, v.Name())
			assert.Equal(t, tt.resolved, v.Resolved())
			assert.Equal(t, tt.chain, v.Chain())

			hello, ok := v.Lookup("test", "hello")
			require.True(t, ok)
			assert.Equal(t, tt.hello, hello)
		})
	}
}

func TestResolve_ExtendsAlias(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	v, err := Resolve(doc, "dev2")
	require.NoError(t, err)
	hello, _ := v.Lookup("test", "hello")
	assert.Equal(t, "world2", hello)

	links := v.Links()
	assert.Equal(t, []Link{
		{Name: "dev2"},
		{Name: "prod", Via: ExtendsKey},
		{Name: "production", Via: AliasKey},
	}, links)
}

func TestResolve_Unknown(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	_, err := Resolve(doc, "asdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEnvironment))
	assert.False(t, errors.Is(err, ErrResolution))

	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "asdf", unknown.Name)
}

func TestResolve_NoEnvironmentsSection(t *testing.T) {
	doc := newDoc(t, "default:\n  a: 1\n")

	_, err := Resolve(doc, "production")
	assert.True(t, errors.Is(err, ErrUnknownEnvironment))
	assert.Empty(t, Names(doc))
}

func TestResolve_Failures(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	tests := []struct {
		name   string
		chain  []string
		reason string
	}{
		{"broken", []string{"broken", "staging2"}, `alias "staging2" is not declared`},
		{"orphan", []string{"orphan", "nowhere"}, `extends "nowhere" is not declared`},
		{"loop_a", []string{"loop_a", "loop_b", "loop_a"}, "cycle detected"},
		{"self", []string{"self", "self"}, "cycle detected"},
		{"scalar", []string{"scalar"}, "is not a mapping"},
		{"bad_alias", []string{"bad_alias"}, "must be a non-empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(doc, tt.name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrResolution))

			var resErr *ResolutionError
			require.True(t, errors.As(err, &resErr))
			assert.Equal(t, tt.name, resErr.Name)
			assert.Equal(t, tt.chain, resErr.Chain)
			assert.Contains(t, resErr.Reason, tt.reason)
		})
	}
}

func TestNamesAndDefault(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	names := Names(doc)
	assert.Contains(t, names, "production")
	assert.Contains(t, names, "development")
	assert.IsIncreasing(t, names)

	assert.True(t, Declared(doc, "staging"))
	assert.False(t, Declared(doc, "asdf"))

	def := Default(doc)
	assert.Equal(t, map[string]any{"test": map[string]any{"hello": "world"}}, def)

	v, ok := LookupDefault(doc, "test", "hello")
	require.True(t, ok)
	assert.Equal(t, "world", v)

	_, ok = LookupDefault(doc, "", "hello")
	assert.False(t, ok)

	assert.Empty(t, Default(newDoc(t, "a: 1\n")))
}

func TestDescribe(t *testing.T) {
	doc := newDoc(t, chainsYAML)

	links, err := Describe(doc, "local")
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Name: "local"},
		{Name: "development", Via: ExtendsKey},
		{Name: "staging", Via: ExtendsKey},
	}, links)

	_, err = Describe(doc, "broken")
	assert.True(t, errors.Is(err, ErrResolution))
}
