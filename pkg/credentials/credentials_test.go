package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test, restoring the original
// value afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
}

func TestResolveExplicitKeyWins(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	key, err := Resolve("flag-key")
	require.NoError(t, err)
	assert.Equal(t, "flag-key", key)
}

func TestResolveFallsBackToEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(APIKeyEnv, "env-key")

	key, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveReadsDotEnvFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("API_KEY=dotenv-key\n"), 0o600)
	require.NoError(t, err)

	chdir(t, tmpDir)
	unsetEnv(t, APIKeyEnv)

	key, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", key)
}

func TestResolveEnvironmentWinsOverDotEnv(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte("API_KEY=dotenv-key\n"), 0o600)
	require.NoError(t, err)

	chdir(t, tmpDir)
	t.Setenv(APIKeyEnv, "env-key")

	key, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}

func TestResolveMissingKey(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, APIKeyEnv)

	_, err := Resolve("")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "API key missing")
}
