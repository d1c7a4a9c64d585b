package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// An in-memory store must serve every statement from the one connection
// that holds the database. If the pool were allowed to grow, a statement
// landing on a second connection would see an empty database and fail
// with "no such table".
func TestMemoryStoreSurvivesConcurrentUse(t *testing.T) {
	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()

	// Park a transaction on the sole connection so a concurrent query
	// has to wait for it instead of opening a second connection.
	tx, err := st.Tx(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := st.Users().ListUsers(ctx)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tx.Rollback())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent query never completed")
	}
}
