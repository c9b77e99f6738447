package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/gymtrack/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestStore_Memory(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	storetest.Run(t, st)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gym.db")

	st, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
	require.NoError(t, st.Close())

	st, err = sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
}
