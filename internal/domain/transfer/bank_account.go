package transfer

import (
	"github.com/corebank/backend/internal/domain/shared"
)

// BankAccount represents a customer account holding a balance in minor
// currency units. Accounts are pre-existing: this core looks them up and
// debits them, it never creates them.
type BankAccount struct {
	shared.BaseEntity
	OrganizationName string
	BIC              string
	IBAN             string
	BalanceCents     int64
}

// SufficientBalanceFor returns true if the account can cover a debit of the
// given amount.
func (a *BankAccount) SufficientBalanceFor(amountCents int64) bool {
	return a.BalanceCents >= amountCents
}

// Debit decreases the balance by the given amount. The balance never goes
// negative; an uncovered debit fails with ErrInsufficientBalance and leaves
// the balance unchanged.
//
// Production code debits through BankAccountRepository.Debit, which performs
// the same check-and-decrement as one atomic statement. This method carries
// the invariant for in-memory implementations.
func (a *BankAccount) Debit(amountCents int64) error {
	if !a.SufficientBalanceFor(amountCents) {
		return shared.ErrInsufficientBalance
	}
	a.BalanceCents -= amountCents
	return nil
}
