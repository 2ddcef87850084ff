package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesEntries(t *testing.T) {
	v, err := New("  Python ", "python", "Machine Learning", "node.js")
	require.NoError(t, err)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"machine learning", "node.js", "python"}, v.Entries())
	assert.True(t, v.Contains("PYTHON"))
	assert.False(t, v.Contains("golang"))
}

func TestNewRejectsEmptyEntries(t *testing.T) {
	_, err := New()
	require.Error(t, err)

	_, err = New("python", "   ")
	require.Error(t, err)
}

func TestLookupResolvesNormalizedKeys(t *testing.T) {
	v, err := New("node.js", "ci/cd", "vs code", "python")
	require.NoError(t, err)

	cases := map[string]string{
		"nodejs":  "node.js",
		"node.js": "node.js",
		"cicd":    "ci/cd",
		"vscode":  "vs code",
		"python":  "python",
	}
	for key, want := range cases {
		got, ok := v.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, ok := v.Lookup("java")
	assert.False(t, ok)
}

func TestLookupPrefersExactEntryOnCollision(t *testing.T) {
	v, err := New("node.js", "nodejs")
	require.NoError(t, err)

	got, ok := v.Lookup("nodejs")
	require.True(t, ok)
	assert.Equal(t, "nodejs", got)
}

func TestPhrases(t *testing.T) {
	v, err := New("python", "machine learning", "node.js", "ci/cd")
	require.NoError(t, err)

	assert.Equal(t, []string{"machine learning", "node.js"}, v.Phrases())
}

func TestDefault(t *testing.T) {
	v := Default()

	assert.Same(t, v, Default())
	assert.GreaterOrEqual(t, v.Len(), 140)
	for _, skill := range []string{"python", "machine learning", "node.js", "ci/cd", "communication", "docker"} {
		assert.True(t, v.Contains(skill), skill)
	}
}

func TestExtend(t *testing.T) {
	base, err := New("python")
	require.NoError(t, err)

	extended, err := Extend(base, "Golang")
	require.NoError(t, err)

	assert.Equal(t, []string{"golang", "python"}, extended.Entries())
	assert.Equal(t, 1, base.Len())

	same, err := Extend(base)
	require.NoError(t, err)
	assert.Same(t, base, same)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	extend := filepath.Join(dir, "extend.yaml")
	require.NoError(t, os.WriteFile(extend, []byte("skills:\n  - Golang\n  - gRPC\n"), 0o600))

	v, err := LoadFile(extend)
	require.NoError(t, err)
	assert.True(t, v.Contains("golang"))
	assert.True(t, v.Contains("grpc"))
	assert.True(t, v.Contains("python"))

	replace := filepath.Join(dir, "replace.yaml")
	require.NoError(t, os.WriteFile(replace, []byte("replace: true\nskills: [golang]\n"), 0o600))

	v, err = LoadFile(replace)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, v.Entries())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile("")
	require.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	unknown := filepath.Join(t.TempDir(), "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("skils: [golang]\n"), 0o600))

	_, err = LoadFile(unknown)
	require.Error(t, err)
}
