package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaths_ExplicitBase(t *testing.T) {
	p, err := NewPaths("/data/pp")
	require.NoError(t, err)

	assert.Equal(t, "/data/pp", p.Base())
	assert.Equal(t, filepath.Join("/data/pp", "users.csv"), p.Users())
	assert.Equal(t, filepath.Join("/data/pp", "pantry.csv"), p.Pantry())
	assert.Equal(t, filepath.Join("/data/pp", "notifications.csv"), p.Notifications())
	assert.Equal(t, filepath.Join("/data/pp", "pantrypal.log"), p.LogFile())
}

func TestNewPaths_DefaultsToHome(t *testing.T) {
	p, err := NewPaths("")
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "PantryPal"), p.Base())
}

func TestEnsureBase_CreatesAndTolerateExisting(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "PantryPal")
	p, err := NewPaths(base)
	require.NoError(t, err)

	require.NoError(t, p.EnsureBase())
	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	require.NoError(t, p.EnsureBase())
}

func TestEnsureParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "users.csv")
	require.NoError(t, EnsureParent(path))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
