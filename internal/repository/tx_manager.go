package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// TransactionManager manages database transactions via context injection.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back otherwise, including on panic.
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		// already inside a transaction; join it
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetDB extracts the transaction DB from context if present, otherwise returns root DB.
// Repositories must always go through GetDB so work inside RunInTx stays on the tx.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}

// LockMode is the row lock taken by the FindByIDLocked finders. It only holds
// inside RunInTx; sqlite has no row locks and drops the clause.
type LockMode string

const (
	// LockShare blocks concurrent deletes of the row until the tx ends.
	LockShare LockMode = "SHARE"
	// LockUpdate waits for LockShare holders and excludes new ones.
	LockUpdate LockMode = "UPDATE"
)

func lockRow(mode LockMode) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: string(mode)})
	}
}
