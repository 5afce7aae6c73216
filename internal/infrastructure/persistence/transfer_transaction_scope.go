package persistence

import (
	"context"

	apptransfer "github.com/corebank/backend/internal/application/transfer"
	"github.com/corebank/backend/internal/domain/transfer"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptransfer.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// BankAccounts returns the bank account repository scoped to the current transaction.
func (r *gormTransactionalRepositories) BankAccounts() transfer.BankAccountRepository {
	return NewGormBankAccountRepository(r.tx)
}

// Transfers returns the transfer repository scoped to the current transaction.
func (r *gormTransactionalRepositories) Transfers() transfer.TransferRepository {
	return NewGormTransferRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptransfer.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ apptransfer.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
