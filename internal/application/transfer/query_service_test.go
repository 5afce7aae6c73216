package transfer

import (
	"context"
	"testing"

	domaintransfer "github.com/corebank/backend/internal/domain/transfer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountQueryService_GetAccount(t *testing.T) {
	account := newTestAccount(6_125_250)
	accountRepo := newFakeBankAccountRepository(account)
	service := NewAccountQueryService(accountRepo, &fakeTransferRepository{})

	t.Run("returns the account with both balance renderings", func(t *testing.T) {
		response, err := service.GetAccount(context.Background(), account.ID)
		require.NoError(t, err)

		assert.Equal(t, account.ID.String(), response.ID)
		assert.Equal(t, "ACME Corp", response.OrganizationName)
		assert.Equal(t, "OIVUSCLQXXX", response.BIC)
		assert.Equal(t, "FR10474608000002006107XXXXX", response.IBAN)
		assert.Equal(t, int64(6_125_250), response.BalanceCents)
		assert.Equal(t, "61252.5", response.Balance)
	})

	t.Run("unknown account reports not found", func(t *testing.T) {
		_, err := service.GetAccount(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domaintransfer.ErrBankAccountNotFound)
	})
}

func TestAccountQueryService_ListTransfers(t *testing.T) {
	account := newTestAccount(100_000_000)
	accountRepo := newFakeBankAccountRepository(account)
	transferRepo := &fakeTransferRepository{}
	service := NewAccountQueryService(accountRepo, transferRepo)

	first, err := domaintransfer.NewTransfer(account, domaintransfer.CreditTransferCommand{
		Amount:           "14.5",
		CounterpartyName: "Bip Bip",
	})
	require.NoError(t, err)
	second, err := domaintransfer.NewTransfer(account, domaintransfer.CreditTransferCommand{
		Amount:           "61238",
		CounterpartyName: "Wile E Coyote",
	})
	require.NoError(t, err)
	require.NoError(t, transferRepo.Create(context.Background(), first))
	require.NoError(t, transferRepo.Create(context.Background(), second))

	t.Run("returns records in creation order", func(t *testing.T) {
		records, err := service.ListTransfers(context.Background(), account.ID)
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, "Bip Bip", records[0].CounterpartyName)
		assert.Equal(t, int64(1450), records[0].AmountCents)
		assert.Equal(t, "14.5", records[0].Amount)
		assert.Equal(t, "Wile E Coyote", records[1].CounterpartyName)
		assert.Equal(t, int64(6123800), records[1].AmountCents)
	})

	t.Run("account with no transfers returns an empty list", func(t *testing.T) {
		other := newTestAccount(0)
		other.IBAN = "FR0000000000000000000000000"
		otherRepo := newFakeBankAccountRepository(other)
		otherService := NewAccountQueryService(otherRepo, &fakeTransferRepository{})

		records, err := otherService.ListTransfers(context.Background(), other.ID)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("unknown account reports not found", func(t *testing.T) {
		_, err := service.ListTransfers(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domaintransfer.ErrBankAccountNotFound)
	})
}
