package transfer

import (
	"github.com/corebank/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Transfer is a persisted record of one outgoing credit transfer. Records
// are immutable once created - corrections require compensating entries,
// never updates.
type Transfer struct {
	shared.BaseEntity
	BankAccountID    uuid.UUID
	CounterpartyName string
	CounterpartyBIC  string
	CounterpartyIBAN string
	Description      string
	AmountCents      int64
}

// NewTransfer creates a transfer record for one credit transfer of a batch,
// referencing the debited account. It fails if the line item's amount does
// not convert to minor units.
func NewTransfer(account *BankAccount, cmd CreditTransferCommand) (*Transfer, error) {
	amountCents, err := cmd.AmountCents()
	if err != nil {
		return nil, err
	}

	return &Transfer{
		BaseEntity:       shared.NewBaseEntity(),
		BankAccountID:    account.ID,
		CounterpartyName: cmd.CounterpartyName,
		CounterpartyBIC:  cmd.CounterpartyBIC,
		CounterpartyIBAN: cmd.CounterpartyIBAN,
		Description:      cmd.Description,
		AmountCents:      amountCents,
	}, nil
}
