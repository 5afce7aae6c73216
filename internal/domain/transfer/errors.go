package transfer

import "github.com/corebank/backend/internal/domain/shared"

// Transfer domain errors
var (
	// ErrBankAccountNotFound is returned when no account matches the
	// organization name / BIC / IBAN triple
	ErrBankAccountNotFound = shared.NewDomainError("BANK_ACCOUNT_NOT_FOUND", "Bank account not found")
)
