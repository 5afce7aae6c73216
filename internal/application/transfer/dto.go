package transfer

import (
	"time"

	"github.com/corebank/backend/internal/domain/shared/valueobject"
	"github.com/corebank/backend/internal/domain/transfer"
)

// BankAccountResponse represents a bank account in API responses. The
// balance is rendered both in minor units and as a decimal string.
type BankAccountResponse struct {
	ID               string    `json:"id"`
	OrganizationName string    `json:"organization_name"`
	BIC              string    `json:"bic"`
	IBAN             string    `json:"iban"`
	BalanceCents     int64     `json:"balance_cents"`
	Balance          string    `json:"balance"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToBankAccountResponse converts a domain BankAccount to its response form.
func ToBankAccountResponse(a *transfer.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:               a.ID.String(),
		OrganizationName: a.OrganizationName,
		BIC:              a.BIC,
		IBAN:             a.IBAN,
		BalanceCents:     a.BalanceCents,
		Balance:          valueobject.NewAmountFromCents(a.BalanceCents).String(),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// TransferResponse represents a persisted transfer record in API responses.
type TransferResponse struct {
	ID               string    `json:"id"`
	BankAccountID    string    `json:"bank_account_id"`
	CounterpartyName string    `json:"counterparty_name"`
	CounterpartyBIC  string    `json:"counterparty_bic"`
	CounterpartyIBAN string    `json:"counterparty_iban"`
	Description      string    `json:"description"`
	AmountCents      int64     `json:"amount_cents"`
	Amount           string    `json:"amount"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToTransferResponse converts a domain Transfer to its response form.
func ToTransferResponse(t *transfer.Transfer) TransferResponse {
	return TransferResponse{
		ID:               t.ID.String(),
		BankAccountID:    t.BankAccountID.String(),
		CounterpartyName: t.CounterpartyName,
		CounterpartyBIC:  t.CounterpartyBIC,
		CounterpartyIBAN: t.CounterpartyIBAN,
		Description:      t.Description,
		AmountCents:      t.AmountCents,
		Amount:           valueobject.NewAmountFromCents(t.AmountCents).String(),
		CreatedAt:        t.CreatedAt,
	}
}
