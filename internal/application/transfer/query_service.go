package transfer

import (
	"context"
	"errors"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/domain/transfer"
	"github.com/google/uuid"
)

// AccountQueryService serves the read side: account balances and transfer
// histories. Queries run outside any transaction scope.
type AccountQueryService struct {
	accountRepo  transfer.BankAccountRepository
	transferRepo transfer.TransferRepository
}

// NewAccountQueryService creates a new AccountQueryService.
func NewAccountQueryService(
	accountRepo transfer.BankAccountRepository,
	transferRepo transfer.TransferRepository,
) *AccountQueryService {
	return &AccountQueryService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

// GetAccount returns an account with its current balance.
func (s *AccountQueryService) GetAccount(ctx context.Context, id uuid.UUID) (*BankAccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, transfer.ErrBankAccountNotFound
		}
		return nil, err
	}

	response := ToBankAccountResponse(account)
	return &response, nil
}

// ListTransfers returns an account's transfer records in creation order.
func (s *AccountQueryService) ListTransfers(ctx context.Context, accountID uuid.UUID) ([]TransferResponse, error) {
	if _, err := s.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, transfer.ErrBankAccountNotFound
		}
		return nil, err
	}

	records, err := s.transferRepo.FindByBankAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	responses := make([]TransferResponse, len(records))
	for i, record := range records {
		responses[i] = ToTransferResponse(record)
	}
	return responses, nil
}
