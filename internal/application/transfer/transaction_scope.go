package transfer

import (
	"context"

	"github.com/corebank/backend/internal/domain/transfer"
)

// TransactionScope provides transactional access to the transfer gateways.
// When a function is executed within a transaction scope, all gateway
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the transfer gateways within
// a transaction. Both repositories share the same underlying database
// transaction, so a rolled-back scope undoes the account debit and every
// transfer record created through it.
type TransactionalRepositories interface {
	// BankAccounts returns the account ledger gateway scoped to the current transaction
	BankAccounts() transfer.BankAccountRepository
	// Transfers returns the transfer record gateway scoped to the current transaction
	Transfers() transfer.TransferRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	accountRepo  transfer.BankAccountRepository
	transferRepo transfer.TransferRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo transfer.BankAccountRepository,
	transferRepo transfer.TransferRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BankAccounts returns the account ledger gateway.
func (s *NoOpTransactionScope) BankAccounts() transfer.BankAccountRepository {
	return s.accountRepo
}

// Transfers returns the transfer record gateway.
func (s *NoOpTransactionScope) Transfers() transfer.TransferRepository {
	return s.transferRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
