package storage

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("teacher_roster/job-1.csv", []byte("Name,Email\n"))
	require.NoError(t, err)
	assert.Equal(t, "teacher_roster/job-1.csv", rel)

	file, err := store.Open(rel)
	require.NoError(t, err)
	defer file.Close()
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "Name,Email\n", string(body))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.csv", []byte("x"))
	require.Error(t, err)

	_, err = store.Open("/etc/passwd")
	require.Error(t, err)
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("leave_report/job-2.csv", []byte("x"))
	require.NoError(t, err)

	// Nothing is older than an hour yet.
	deleted, err := store.CleanupOlderThan(time.Hour)
	require.NoError(t, err)
	assert.Empty(t, deleted)

	// A negative TTL moves the cutoff into the future, purging everything.
	deleted, err = store.CleanupOlderThan(-time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"leave_report/job-2.csv"}, deleted)

	_, err = store.Open("leave_report/job-2.csv")
	require.Error(t, err)
}

func TestLocalStorageDeleteMissingIsNoOp(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete("never/existed.pdf"))
}
