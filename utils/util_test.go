package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyDir(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "a", "b", "c.png")
	require.NoError(t, ReadyDir(name))
	assert.True(t, IsDir(filepath.Join(dir, "a", "b")))
	assert.False(t, Exists(name))

	// existing directories are fine
	assert.NoError(t, ReadyDir(name))
}

func TestFSError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := MakeDir(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFilesystem))
	var fe *FSError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "mkdir", fe.Op)
	assert.Contains(t, err.Error(), "mkdir "+filepath.Join(blocker, "sub"))

	_, err = FileSize(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrFilesystem)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateFileTruncates(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, os.WriteFile(name, []byte("old content"), 0644))

	f, err := CreateFile(name)
	require.NoError(t, err)
	_, err = f.Write([]byte("new"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	size, err := FileSize(name)
	require.NoError(t, err)
	assert.Equal(t, int64(3), size)
}
