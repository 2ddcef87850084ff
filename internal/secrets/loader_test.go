package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  from-file \n"), 0o600))

	secret, err := Load(Source{Name: "token", Value: "inline", File: path})
	require.NoError(t, err)
	assert.Equal(t, "from-file", secret)
}

func TestLoadInlineValue(t *testing.T) {
	secret, err := Load(Source{Value: " inline "})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SKILL_GAP_TEST_SECRET", " env-value ")

	secret, err := Load(Source{Name: "api key", Env: "SKILL_GAP_TEST_SECRET"})
	require.NoError(t, err)
	assert.Equal(t, "env-value", secret)

	secret, err = Load(Source{Value: "inline", Env: "SKILL_GAP_TEST_SECRET"})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("SKILL_GAP_TEST_EMPTY", "")

	_, err := Load(Source{Name: "api key"})
	assert.EqualError(t, err, "api key is not configured")

	_, err = Load(Source{Env: "SKILL_GAP_TEST_EMPTY"})
	assert.EqualError(t, err, "secret is not configured (checked $SKILL_GAP_TEST_EMPTY)")

	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))
	_, err = Load(Source{Name: "token", File: empty})
	assert.ErrorContains(t, err, "is empty")

	_, err = Load(Source{Name: "token", File: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorContains(t, err, "reading token from file")
}

func TestOptional(t *testing.T) {
	secret, err := Optional(Source{Name: "token"})
	require.NoError(t, err)
	assert.Empty(t, secret)

	_, err = Optional(Source{Name: "token", File: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
