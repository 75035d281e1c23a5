package dirs

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only consulted on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "bytesize"), got)

	file, err := ConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "bytesize", "config.yaml"), file)
}

func TestEnsure(t *testing.T) {
	assert.Error(t, Ensure(""))

	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, Ensure(dir))
	assert.DirExists(t, dir)
}
