package transfer

import (
	"context"
	"errors"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/corebank/backend/internal/domain/transfer"
	"github.com/corebank/backend/internal/infrastructure/logger"
	"github.com/corebank/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// BulkTransferService is the bulk transfer orchestrator. Given one source
// account and a batch of credit transfers it debits the account exactly once
// and persists one transfer record per line item, or persists nothing.
//
// The whole operation runs inside one transaction scope: the sufficiency
// check and the debit are evaluated against the same stored balance by the
// gateway's atomic Debit, so two concurrent batches against the same account
// can never both pass the check against a stale balance.
type BulkTransferService struct {
	scope TransactionScope
}

// NewBulkTransferService creates a new BulkTransferService.
func NewBulkTransferService(scope TransactionScope) *BulkTransferService {
	return &BulkTransferService{scope: scope}
}

// Execute performs a bulk transfer. Any error aborts the scope: the account
// balance and the transfer table are left exactly as they were. The service
// never retries; transient-conflict retry policy belongs to the caller.
func (s *BulkTransferService) Execute(ctx context.Context, cmd transfer.BulkTransferCommand) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "bulk_transfer", "execute")
	defer span.End()

	telemetry.SetAttributes(span,
		telemetry.SpanAttrOrganizationName, cmd.OrganizationName,
		telemetry.SpanAttrTransferCount, len(cmd.CreditTransfers),
	)

	var total int64
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		account, err := repos.BankAccounts().FindByIdentity(ctx, cmd.OrganizationName, cmd.BIC, cmd.IBAN)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return transfer.ErrBankAccountNotFound
			}
			return err
		}
		telemetry.SetAttribute(span, telemetry.SpanAttrBankAccountID, account.ID.String())

		total, err = cmd.TotalCents()
		if err != nil {
			return err
		}

		if err := repos.BankAccounts().Debit(ctx, account.ID, total); err != nil {
			return err
		}

		for _, ct := range cmd.CreditTransfers {
			record, err := transfer.NewTransfer(account, ct)
			if err != nil {
				return err
			}
			if err := repos.Transfers().Create(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	telemetry.SetAttribute(span, telemetry.SpanAttrAmountCents, total)
	logger.L(ctx).Info("Bulk transfer settled",
		zap.String("organization_name", cmd.OrganizationName),
		zap.Int("credit_transfer_count", len(cmd.CreditTransfers)),
		zap.Int64("total_cents", total),
	)

	return nil
}
