package ledgerfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swarmline/swarmline/internal/domain"
)

func TestStore_WriteAndRead(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Write("todo.md", []byte("# Proj\n")))

	data, err := store.Read("todo.md")
	require.NoError(t, err)
	assert.Equal(t, "# Proj\n", string(data))
}

func TestStore_Read_NotFound(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Read("missing.md")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerNotFound)
}

func TestStore_Exists(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	ok, err := store.Exists("todo.md")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write("todo.md", []byte("# Proj\n")))

	ok, err = store.Exists("todo.md")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Write_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Write("todo.md", []byte("old")))
	require.NoError(t, store.Write("todo.md", []byte("new")))

	data, err := store.Read("todo.md")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todo.md", filepath.Base(entries[0].Name()))
}
