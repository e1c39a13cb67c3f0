package database

import (
	"context"
	"database/sql"

	"github.com/ledgerline/ledgerline/internal/apierror"
)

// Txn is an explicit unit-of-work handle over one *sql.Tx. It is passed by
// value into every write-path store call, so there is no ambient session
// state to race on: two concurrent service calls each hold their own handle.
type Txn struct {
	tx *sql.Tx
}

// BeginTxn opens a new transaction scope.
func (d Datasource) BeginTxn(ctx context.Context) (*Txn, error) {
	tx, err := d.Conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelDefault})
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to begin transaction", err)
	}
	return &Txn{tx: tx}, nil
}

// Commit durably applies every write made on the handle and closes it.
// Committing a closed handle fails with sql.ErrTxDone.
func (t *Txn) Commit() error {
	return t.tx.Commit()
}

// Rollback discards every write made on the handle and closes it. Rolling
// back after commit fails with sql.ErrTxDone, which deferred cleanup callers
// ignore.
func (t *Txn) Rollback() error {
	return t.tx.Rollback()
}
