package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckShardDirReadable_Missing(t *testing.T) {
	checker := New()
	result := checker.CheckShardDirReadable(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, StatusFail, result.Status)
}

func TestCheckShardDirReadable_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "shard.bin")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	checker := New()
	result := checker.CheckShardDirReadable(file)
	assert.Equal(t, StatusFail, result.Status)
}

func TestCheckShardDirReadable_Empty(t *testing.T) {
	checker := New()
	result := checker.CheckShardDirReadable(t.TempDir())
	assert.Equal(t, StatusWarn, result.Status)
}

func TestCheckShardDirReadable_HasShards(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "filter_color.bin"), []byte("x"), 0644))

	checker := New()
	result := checker.CheckShardDirReadable(tmpDir)
	assert.Equal(t, StatusPass, result.Status)
}
