package models

import (
	"github.com/corebank/backend/internal/domain/transfer"
	"github.com/google/uuid"
)

// BankAccountModel is the persistence model for bank accounts. The
// (organization_name, bic, iban) triple identifies an account to API
// callers and carries a unique index; balances are stored in minor units.
type BankAccountModel struct {
	BaseModel
	OrganizationName string `gorm:"type:varchar(255);not null;uniqueIndex:idx_bank_accounts_identity"`
	BIC              string `gorm:"type:varchar(11);not null;uniqueIndex:idx_bank_accounts_identity"`
	IBAN             string `gorm:"type:varchar(34);not null;uniqueIndex:idx_bank_accounts_identity"`
	BalanceCents     int64  `gorm:"not null;default:0"`
}

// TableName specifies the table name for BankAccountModel
func (BankAccountModel) TableName() string {
	return "bank_accounts"
}

// ToDomain converts BankAccountModel to domain BankAccount
func (m *BankAccountModel) ToDomain() *transfer.BankAccount {
	return &transfer.BankAccount{
		BaseEntity:       m.BaseModel.ToDomain(),
		OrganizationName: m.OrganizationName,
		BIC:              m.BIC,
		IBAN:             m.IBAN,
		BalanceCents:     m.BalanceCents,
	}
}

// BankAccountModelFromDomain converts domain BankAccount to BankAccountModel
func BankAccountModelFromDomain(a *transfer.BankAccount) *BankAccountModel {
	m := &BankAccountModel{
		OrganizationName: a.OrganizationName,
		BIC:              a.BIC,
		IBAN:             a.IBAN,
		BalanceCents:     a.BalanceCents,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}

// TransferModel is the persistence model for transfer records. Rows are
// append-only; there is no update path.
type TransferModel struct {
	BaseModel
	BankAccountID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CounterpartyName string    `gorm:"type:varchar(255);not null"`
	CounterpartyBIC  string    `gorm:"type:varchar(11);not null"`
	CounterpartyIBAN string    `gorm:"type:varchar(34);not null"`
	Description      string    `gorm:"type:text"`
	AmountCents      int64     `gorm:"not null"`
}

// TableName specifies the table name for TransferModel
func (TransferModel) TableName() string {
	return "transfers"
}

// ToDomain converts TransferModel to domain Transfer
func (m *TransferModel) ToDomain() *transfer.Transfer {
	return &transfer.Transfer{
		BaseEntity:       m.BaseModel.ToDomain(),
		BankAccountID:    m.BankAccountID,
		CounterpartyName: m.CounterpartyName,
		CounterpartyBIC:  m.CounterpartyBIC,
		CounterpartyIBAN: m.CounterpartyIBAN,
		Description:      m.Description,
		AmountCents:      m.AmountCents,
	}
}

// TransferModelFromDomain converts domain Transfer to TransferModel
func TransferModelFromDomain(t *transfer.Transfer) *TransferModel {
	m := &TransferModel{
		BankAccountID:    t.BankAccountID,
		CounterpartyName: t.CounterpartyName,
		CounterpartyBIC:  t.CounterpartyBIC,
		CounterpartyIBAN: t.CounterpartyIBAN,
		Description:      t.Description,
		AmountCents:      t.AmountCents,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
