package transfer

import (
	"github.com/corebank/backend/internal/domain/shared/valueobject"
)

// CreditTransferCommand is one line item of a bulk transfer batch. The
// amount is carried as the decimal string it arrived as; it is converted to
// minor units only when consumed, so construction never fails.
type CreditTransferCommand struct {
	Amount           string
	CounterpartyName string
	CounterpartyBIC  string
	CounterpartyIBAN string
	Description      string
}

// AmountCents converts the line item's amount to an integer count of minor
// units using exact decimal arithmetic.
func (c CreditTransferCommand) AmountCents() (int64, error) {
	amount, err := valueobject.NewAmountFromString(c.Amount)
	if err != nil {
		return 0, err
	}
	return amount.Cents()
}

// BulkTransferCommand is the validated, normalized representation of an
// incoming bulk transfer request: one source account identity plus an
// ordered list of credit transfers. Order is preserved so transfer records
// are created deterministically in submission order.
type BulkTransferCommand struct {
	OrganizationName string
	BIC              string
	IBAN             string
	CreditTransfers  []CreditTransferCommand
}

// NewBulkTransferCommand builds a command from an untyped bag of fields,
// the shape the wire request arrives in. Absent or malformed fields are
// carried through as empty values and surface as errors only when consumed
// downstream; no I/O happens here.
func NewBulkTransferCommand(raw map[string]any) BulkTransferCommand {
	cmd := BulkTransferCommand{
		OrganizationName: stringField(raw, "organization_name"),
		BIC:              stringField(raw, "organization_bic"),
		IBAN:             stringField(raw, "organization_iban"),
	}

	items, _ := raw["credit_transfers"].([]any)
	for _, item := range items {
		fields, _ := item.(map[string]any)
		cmd.CreditTransfers = append(cmd.CreditTransfers, CreditTransferCommand{
			Amount:           stringField(fields, "amount"),
			CounterpartyName: stringField(fields, "counterparty_name"),
			CounterpartyBIC:  stringField(fields, "counterparty_bic"),
			CounterpartyIBAN: stringField(fields, "counterparty_iban"),
			Description:      stringField(fields, "description"),
		})
	}

	return cmd
}

// TotalCents sums every credit transfer's minor-unit amount using exact
// integer addition. An empty batch totals zero.
func (c BulkTransferCommand) TotalCents() (int64, error) {
	cents := make([]int64, 0, len(c.CreditTransfers))
	for _, ct := range c.CreditTransfers {
		amount, err := ct.AmountCents()
		if err != nil {
			return 0, err
		}
		cents = append(cents, amount)
	}
	return valueobject.SumCents(cents...)
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}
