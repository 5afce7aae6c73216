package transfer

import (
	"context"
	"testing"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/domain/shared/valueobject"
	domaintransfer "github.com/corebank/backend/internal/domain/transfer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBankAccountRepository is an in-memory account ledger for service tests.
type fakeBankAccountRepository struct {
	accounts map[uuid.UUID]*domaintransfer.BankAccount
}

func newFakeBankAccountRepository(accounts ...*domaintransfer.BankAccount) *fakeBankAccountRepository {
	repo := &fakeBankAccountRepository{accounts: make(map[uuid.UUID]*domaintransfer.BankAccount)}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	return repo
}

func (r *fakeBankAccountRepository) FindByID(_ context.Context, id uuid.UUID) (*domaintransfer.BankAccount, error) {
	account, ok := r.accounts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeBankAccountRepository) FindByIdentity(_ context.Context, organizationName, bic, iban string) (*domaintransfer.BankAccount, error) {
	for _, account := range r.accounts {
		if account.OrganizationName == organizationName && account.BIC == bic && account.IBAN == iban {
			copied := *account
			return &copied, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeBankAccountRepository) Debit(_ context.Context, accountID uuid.UUID, amountCents int64) error {
	account, ok := r.accounts[accountID]
	if !ok {
		return shared.ErrNotFound
	}
	return account.Debit(amountCents)
}

// fakeTransferRepository is an in-memory transfer record store.
type fakeTransferRepository struct {
	records []*domaintransfer.Transfer
}

func (r *fakeTransferRepository) Create(_ context.Context, t *domaintransfer.Transfer) error {
	copied := *t
	r.records = append(r.records, &copied)
	return nil
}

func (r *fakeTransferRepository) FindByBankAccountID(_ context.Context, accountID uuid.UUID) ([]*domaintransfer.Transfer, error) {
	var matched []*domaintransfer.Transfer
	for _, record := range r.records {
		if record.BankAccountID == accountID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// fakeTransactionScope snapshots the in-memory stores on entry and restores
// them when the scoped function fails, mirroring a rolled-back transaction.
type fakeTransactionScope struct {
	accountRepo  *fakeBankAccountRepository
	transferRepo *fakeTransferRepository
}

func (s *fakeTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	balances := make(map[uuid.UUID]int64, len(s.accountRepo.accounts))
	for id, account := range s.accountRepo.accounts {
		balances[id] = account.BalanceCents
	}
	recordCount := len(s.transferRepo.records)

	if err := fn(s); err != nil {
		for id, balance := range balances {
			s.accountRepo.accounts[id].BalanceCents = balance
		}
		s.transferRepo.records = s.transferRepo.records[:recordCount]
		return err
	}
	return nil
}

func (s *fakeTransactionScope) BankAccounts() domaintransfer.BankAccountRepository {
	return s.accountRepo
}

func (s *fakeTransactionScope) Transfers() domaintransfer.TransferRepository {
	return s.transferRepo
}

func newTestAccount(balanceCents int64) *domaintransfer.BankAccount {
	return &domaintransfer.BankAccount{
		BaseEntity:       shared.NewBaseEntity(),
		OrganizationName: "ACME Corp",
		BIC:              "OIVUSCLQXXX",
		IBAN:             "FR10474608000002006107XXXXX",
		BalanceCents:     balanceCents,
	}
}

func newTestService(accounts ...*domaintransfer.BankAccount) (*BulkTransferService, *fakeBankAccountRepository, *fakeTransferRepository) {
	accountRepo := newFakeBankAccountRepository(accounts...)
	transferRepo := &fakeTransferRepository{}
	scope := &fakeTransactionScope{accountRepo: accountRepo, transferRepo: transferRepo}
	return NewBulkTransferService(scope), accountRepo, transferRepo
}

func testCommand(transfers ...domaintransfer.CreditTransferCommand) domaintransfer.BulkTransferCommand {
	return domaintransfer.BulkTransferCommand{
		OrganizationName: "ACME Corp",
		BIC:              "OIVUSCLQXXX",
		IBAN:             "FR10474608000002006107XXXXX",
		CreditTransfers:  transfers,
	}
}

func TestBulkTransferService_Execute(t *testing.T) {
	account := newTestAccount(100_000_000)
	service, accountRepo, transferRepo := newTestService(account)

	cmd := testCommand(
		domaintransfer.CreditTransferCommand{Amount: "14.5", CounterpartyName: "Bip Bip"},
		domaintransfer.CreditTransferCommand{Amount: "61238", CounterpartyName: "Wile E Coyote"},
	)

	require.NoError(t, service.Execute(context.Background(), cmd))

	// 1450 + 6123800 = 6125250 debited exactly once
	assert.Equal(t, int64(93_874_750), accountRepo.accounts[account.ID].BalanceCents)

	// One record per credit transfer, in submission order
	require.Len(t, transferRepo.records, 2)
	assert.Equal(t, "Bip Bip", transferRepo.records[0].CounterpartyName)
	assert.Equal(t, int64(1450), transferRepo.records[0].AmountCents)
	assert.Equal(t, "Wile E Coyote", transferRepo.records[1].CounterpartyName)
	assert.Equal(t, int64(6123800), transferRepo.records[1].AmountCents)
	for _, record := range transferRepo.records {
		assert.Equal(t, account.ID, record.BankAccountID)
	}
}

func TestBulkTransferService_Execute_Conservation(t *testing.T) {
	// Debited total equals the sum of persisted records: money only moves,
	// it never appears or disappears
	account := newTestAccount(100_000_000)
	service, accountRepo, transferRepo := newTestService(account)

	cmd := testCommand(
		domaintransfer.CreditTransferCommand{Amount: "14.5"},
		domaintransfer.CreditTransferCommand{Amount: "61238"},
		domaintransfer.CreditTransferCommand{Amount: "999"},
		domaintransfer.CreditTransferCommand{Amount: "0.999"},
	)

	require.NoError(t, service.Execute(context.Background(), cmd))

	var recorded int64
	for _, record := range transferRepo.records {
		recorded += record.AmountCents
	}
	assert.Equal(t, int64(6_225_249), recorded)
	assert.Equal(t, int64(100_000_000)-recorded, accountRepo.accounts[account.ID].BalanceCents)
}

func TestBulkTransferService_Execute_AccountNotFound(t *testing.T) {
	service, _, transferRepo := newTestService(newTestAccount(100_000_000))

	cmd := testCommand(domaintransfer.CreditTransferCommand{Amount: "14.5"})
	cmd.OrganizationName = "Unknown Corp"

	err := service.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, domaintransfer.ErrBankAccountNotFound)
	assert.Empty(t, transferRepo.records)
}

func TestBulkTransferService_Execute_IdentityMatchIsCaseSensitive(t *testing.T) {
	service, _, _ := newTestService(newTestAccount(100_000_000))

	cmd := testCommand(domaintransfer.CreditTransferCommand{Amount: "14.5"})
	cmd.OrganizationName = "acme corp"

	err := service.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, domaintransfer.ErrBankAccountNotFound)
}

func TestBulkTransferService_Execute_NotFoundPrecedesAmountValidation(t *testing.T) {
	// An unknown account reports not-found even when the batch also carries
	// a malformed amount
	service, _, _ := newTestService(newTestAccount(100_000_000))

	cmd := testCommand(domaintransfer.CreditTransferCommand{Amount: "garbage"})
	cmd.IBAN = "FR0000000000000000000000000"

	err := service.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, domaintransfer.ErrBankAccountNotFound)
}

func TestBulkTransferService_Execute_InsufficientBalance(t *testing.T) {
	account := newTestAccount(1000)
	service, accountRepo, transferRepo := newTestService(account)

	cmd := testCommand(
		domaintransfer.CreditTransferCommand{Amount: "5.00"},
		domaintransfer.CreditTransferCommand{Amount: "5.01"},
	)

	err := service.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, shared.ErrInsufficientBalance)

	// Nothing persisted, balance untouched
	assert.Equal(t, int64(1000), accountRepo.accounts[account.ID].BalanceCents)
	assert.Empty(t, transferRepo.records)
}

func TestBulkTransferService_Execute_ExactBalance(t *testing.T) {
	account := newTestAccount(1001)
	service, accountRepo, _ := newTestService(account)

	cmd := testCommand(
		domaintransfer.CreditTransferCommand{Amount: "5.00"},
		domaintransfer.CreditTransferCommand{Amount: "5.01"},
	)

	require.NoError(t, service.Execute(context.Background(), cmd))
	assert.Equal(t, int64(0), accountRepo.accounts[account.ID].BalanceCents)
}

func TestBulkTransferService_Execute_InvalidAmountAbortsBatch(t *testing.T) {
	account := newTestAccount(100_000_000)
	service, accountRepo, transferRepo := newTestService(account)

	cmd := testCommand(
		domaintransfer.CreditTransferCommand{Amount: "10.00"},
		domaintransfer.CreditTransferCommand{Amount: "-5"},
	)

	err := service.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, valueobject.ErrInvalidAmount)

	assert.Equal(t, int64(100_000_000), accountRepo.accounts[account.ID].BalanceCents)
	assert.Empty(t, transferRepo.records)
}

func TestBulkTransferService_Execute_EmptyBatch(t *testing.T) {
	account := newTestAccount(100_000_000)
	service, accountRepo, transferRepo := newTestService(account)

	require.NoError(t, service.Execute(context.Background(), testCommand()))

	assert.Equal(t, int64(100_000_000), accountRepo.accounts[account.ID].BalanceCents)
	assert.Empty(t, transferRepo.records)
}

func TestBulkTransferService_Execute_NoOpScope(t *testing.T) {
	// The service only depends on the scope contract; a scope without real
	// transactions still settles a valid batch correctly
	account := newTestAccount(100_000_000)
	accountRepo := newFakeBankAccountRepository(account)
	transferRepo := &fakeTransferRepository{}
	service := NewBulkTransferService(NewNoOpTransactionScope(accountRepo, transferRepo))

	cmd := testCommand(domaintransfer.CreditTransferCommand{Amount: "61252.50"})

	require.NoError(t, service.Execute(context.Background(), cmd))
	assert.Equal(t, int64(93_874_750), accountRepo.accounts[account.ID].BalanceCents)
	assert.Len(t, transferRepo.records, 1)
}

func TestBulkTransferService_Execute_SequentialBatches(t *testing.T) {
	account := newTestAccount(100_000_000)
	service, accountRepo, transferRepo := newTestService(account)

	first := testCommand(domaintransfer.CreditTransferCommand{Amount: "61238"})
	second := testCommand(domaintransfer.CreditTransferCommand{Amount: "14.5"})

	require.NoError(t, service.Execute(context.Background(), first))
	require.NoError(t, service.Execute(context.Background(), second))

	assert.Equal(t, int64(93_874_750), accountRepo.accounts[account.ID].BalanceCents)
	assert.Len(t, transferRepo.records, 2)
}
