package sqlite

import (
	"database/sql"

	"github.com/agrioasis/market/internal/market/store"
)

// rowsScanner is the subset of *sql.Rows the collect helpers need.
type rowsScanner interface {
	Next() bool
	Scan(...any) error
	Err() error
}

// requireAffected maps a no-op UPDATE/DELETE onto store.ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
