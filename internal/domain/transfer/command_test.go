package transfer

import (
	"testing"

	"github.com/corebank/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBulkTransferCommand(t *testing.T) {
	raw := map[string]any{
		"organization_name": "ACME Corp",
		"organization_bic":  "OIVUSCLQXXX",
		"organization_iban": "FR10474608000002006107XXXXX",
		"credit_transfers": []any{
			map[string]any{
				"amount":            "14.5",
				"counterparty_name": "Bip Bip",
				"counterparty_bic":  "CRLYFRPPTOU",
				"counterparty_iban": "EE383680981021245685",
				"description":       "Wonderland/4410",
			},
			map[string]any{
				"amount":            "61238",
				"counterparty_name": "Wile E Coyote",
				"counterparty_bic":  "ZDRPLBQI",
				"counterparty_iban": "DE9935420810036209081725212",
				"description":       "//TeslaMotors/Invoice/12",
			},
		},
	}

	cmd := NewBulkTransferCommand(raw)

	assert.Equal(t, "ACME Corp", cmd.OrganizationName)
	assert.Equal(t, "OIVUSCLQXXX", cmd.BIC)
	assert.Equal(t, "FR10474608000002006107XXXXX", cmd.IBAN)
	require.Len(t, cmd.CreditTransfers, 2)

	// Submission order is preserved
	assert.Equal(t, "Bip Bip", cmd.CreditTransfers[0].CounterpartyName)
	assert.Equal(t, "14.5", cmd.CreditTransfers[0].Amount)
	assert.Equal(t, "Wile E Coyote", cmd.CreditTransfers[1].CounterpartyName)
	assert.Equal(t, "61238", cmd.CreditTransfers[1].Amount)
}

func TestNewBulkTransferCommand_MissingFields(t *testing.T) {
	// Construction never fails; absent or mistyped fields come through as
	// empty values and surface as errors downstream
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "empty bag", raw: map[string]any{}},
		{name: "nil bag", raw: nil},
		{
			name: "wrong field types",
			raw: map[string]any{
				"organization_name": 42,
				"organization_bic":  true,
				"credit_transfers":  "not a list",
			},
		},
		{
			name: "non-object line items",
			raw: map[string]any{
				"credit_transfers": []any{"oops", 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewBulkTransferCommand(tt.raw)
			assert.Empty(t, cmd.OrganizationName)
			assert.Empty(t, cmd.BIC)
			assert.Empty(t, cmd.IBAN)
			for _, ct := range cmd.CreditTransfers {
				assert.Empty(t, ct.Amount)
			}
		})
	}
}

func TestNewBulkTransferCommand_NumericAmountRejectedDownstream(t *testing.T) {
	// Amounts must arrive as decimal strings; a JSON number decodes to
	// float64 and is not silently accepted
	cmd := NewBulkTransferCommand(map[string]any{
		"credit_transfers": []any{
			map[string]any{"amount": 14.5},
		},
	})

	require.Len(t, cmd.CreditTransfers, 1)
	_, err := cmd.CreditTransfers[0].AmountCents()
	assert.ErrorIs(t, err, valueobject.ErrInvalidAmount)
}

func TestBulkTransferCommand_TotalCents(t *testing.T) {
	t.Run("sums all line items", func(t *testing.T) {
		cmd := BulkTransferCommand{
			CreditTransfers: []CreditTransferCommand{
				{Amount: "14.5"},
				{Amount: "61238"},
				{Amount: "999"},
				{Amount: "0.999"},
			},
		}

		total, err := cmd.TotalCents()
		require.NoError(t, err)
		// 1450 + 6123800 + 99900 + 99
		assert.Equal(t, int64(6225249), total)
	})

	t.Run("empty batch totals zero", func(t *testing.T) {
		cmd := BulkTransferCommand{}

		total, err := cmd.TotalCents()
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("invalid line item fails the whole batch", func(t *testing.T) {
		cmd := BulkTransferCommand{
			CreditTransfers: []CreditTransferCommand{
				{Amount: "10.00"},
				{Amount: "-5"},
			},
		}

		_, err := cmd.TotalCents()
		assert.ErrorIs(t, err, valueobject.ErrInvalidAmount)
	})

	t.Run("missing amount fails the whole batch", func(t *testing.T) {
		cmd := BulkTransferCommand{
			CreditTransfers: []CreditTransferCommand{
				{Amount: "10.00"},
				{},
			},
		}

		_, err := cmd.TotalCents()
		assert.ErrorIs(t, err, valueobject.ErrInvalidAmount)
	})
}
