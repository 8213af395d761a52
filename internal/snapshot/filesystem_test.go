package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFilesystem(dir)
	require.NoError(t, err)

	ctx := context.Background()
	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, fs.Save(ctx, "tms_teachers", payload))

	got, err := fs.Load(ctx, "tms_teachers")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// No stray temp file after the atomic rename.
	_, err = os.Stat(filepath.Join(dir, "tms_teachers.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemOverwrite(t *testing.T) {
	fs, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, fs.Save(ctx, "tms_leaves", []byte("first")))
	require.NoError(t, fs.Save(ctx, "tms_leaves", []byte("second")))

	got, err := fs.Load(ctx, "tms_leaves")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestFilesystemLoadMissingKey(t *testing.T) {
	fs, err := NewFilesystem(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background(), "tms_courses")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewFilesystemCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snapshots")
	_, err := NewFilesystem(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
