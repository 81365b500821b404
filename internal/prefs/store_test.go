package prefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frotaerrors "github.com/alexisbeaulieu97/frota/pkg/errors"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "nested", "prefs.json"))
	require.NoError(t, err)

	_, ok, err := store.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "theme", "dark"))

	reopened, err := Open(path)
	require.NoError(t, err)
	value, ok, err := reopened.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
}

func TestSetFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "theme", "light"))

	// A directory where the temp file should go makes the write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = store.Set(context.Background(), "theme", "dark")
	var persistErr *frotaerrors.PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "theme", persistErr.Key)

	value, _, err := store.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)
}

func TestCancelledContextIsPersistenceError(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = store.Get(ctx, "theme")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Set(ctx, "theme", "dark"), context.Canceled)
}
