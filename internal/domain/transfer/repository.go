package transfer

import (
	"context"

	"github.com/google/uuid"
)

// BankAccountRepository is the account ledger gateway. Implementations must
// make Debit's check-and-decrement indivisible with respect to concurrent
// debits against the same account.
type BankAccountRepository interface {
	// FindByID looks up an account by primary key.
	// Returns shared.ErrNotFound when no account matches.
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)

	// FindByIdentity looks up an account by exact, case-sensitive match on
	// the (organization name, BIC, IBAN) triple.
	// Returns shared.ErrNotFound when no account matches.
	FindByIdentity(ctx context.Context, organizationName, bic, iban string) (*BankAccount, error)

	// Debit atomically checks that the stored balance covers amountCents and
	// decreases it, as a single indivisible operation. Returns
	// shared.ErrInsufficientBalance when the balance does not cover the
	// amount; the balance is left unchanged in that case.
	Debit(ctx context.Context, accountID uuid.UUID, amountCents int64) error
}

// TransferRepository is the transfer record gateway. Create persists one
// record within the caller's current transaction scope; no batching or
// deduplication logic belongs here.
type TransferRepository interface {
	Create(ctx context.Context, t *Transfer) error

	// FindByBankAccountID returns an account's transfer records in creation
	// order.
	FindByBankAccountID(ctx context.Context, accountID uuid.UUID) ([]*Transfer, error)
}
