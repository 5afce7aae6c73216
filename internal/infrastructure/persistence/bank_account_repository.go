package persistence

import (
	"context"
	"errors"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/domain/transfer"
	"github.com/corebank/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBankAccountRepository implements BankAccountRepository using GORM
type GormBankAccountRepository struct {
	db *gorm.DB
}

// NewGormBankAccountRepository creates a new GormBankAccountRepository
func NewGormBankAccountRepository(db *gorm.DB) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

// FindByID finds a bank account by ID
func (r *GormBankAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*transfer.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIdentity finds a bank account by exact match on the organization
// name, BIC and IBAN. The comparison is byte-for-byte: no trimming, case
// folding or IBAN normalization happens here.
func (r *GormBankAccountRepository) FindByIdentity(ctx context.Context, organizationName, bic, iban string) (*transfer.BankAccount, error) {
	var model models.BankAccountModel
	if err := r.db.WithContext(ctx).
		Where("organization_name = ? AND bic = ? AND iban = ?", organizationName, bic, iban).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Debit decreases an account balance by amountCents. The sufficiency check
// and the decrement execute as one UPDATE with a balance guard, so two
// concurrent debits can never both succeed against a balance that covers
// only one of them. Zero rows affected means the guard rejected the debit.
func (r *GormBankAccountRepository) Debit(ctx context.Context, accountID uuid.UUID, amountCents int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.BankAccountModel{}).
		Where("id = ? AND balance_cents >= ?", accountID, amountCents).
		UpdateColumn("balance_cents", gorm.Expr("balance_cents - ?", amountCents))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrInsufficientBalance
	}
	return nil
}

// Ensure GormBankAccountRepository implements BankAccountRepository
var _ transfer.BankAccountRepository = (*GormBankAccountRepository)(nil)
