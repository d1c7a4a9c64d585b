package sqlite

import (
	"database/sql"

	"github.com/agrioasis/market/internal/market/store"
)

type sqliteTx struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *sqliteTx {
	return &sqliteTx{tx: tx}
}

func (t *sqliteTx) Users() store.Users       { return &usersRepo{db: t.tx} }
func (t *sqliteTx) Products() store.Products { return &productsRepo{db: t.tx} }
func (t *sqliteTx) Orders() store.Orders     { return &ordersRepo{db: t.tx} }

func (t *sqliteTx) Commit() error   { return t.tx.Commit() }
func (t *sqliteTx) Rollback() error { return t.tx.Rollback() }
