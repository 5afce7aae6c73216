package persistence

import (
	"context"

	"github.com/corebank/backend/internal/domain/transfer"
	"github.com/corebank/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// Create persists a new transfer record
func (r *GormTransferRepository) Create(ctx context.Context, t *transfer.Transfer) error {
	model := models.TransferModelFromDomain(t)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByBankAccountID returns an account's transfer records in creation order
func (r *GormTransferRepository) FindByBankAccountID(ctx context.Context, accountID uuid.UUID) ([]*transfer.Transfer, error) {
	var transferModels []models.TransferModel
	if err := r.db.WithContext(ctx).
		Where("bank_account_id = ?", accountID).
		Order("created_at ASC").
		Find(&transferModels).Error; err != nil {
		return nil, err
	}
	transfers := make([]*transfer.Transfer, len(transferModels))
	for i, model := range transferModels {
		transfers[i] = model.ToDomain()
	}
	return transfers, nil
}

// Ensure GormTransferRepository implements TransferRepository
var _ transfer.TransferRepository = (*GormTransferRepository)(nil)
