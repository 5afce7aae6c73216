package valueobject

import (
	"math"
	"strings"

	"github.com/corebank/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Amount errors
var (
	// ErrInvalidAmount is returned when an amount string does not parse as a
	// non-negative decimal number
	ErrInvalidAmount = shared.NewDomainError("INVALID_AMOUNT", "Amount must be a non-negative decimal number")
	// ErrAmountOverflow is returned when an amount does not fit in an int64
	// count of minor units
	ErrAmountOverflow = shared.NewDomainError("AMOUNT_OVERFLOW", "Amount exceeds the representable range")
)

// minorUnitExponent is the number of decimal places in the currency's minor
// unit (cents).
const minorUnitExponent = 2

// Amount is a value object representing an exact monetary amount.
// It is immutable and backed by decimal arithmetic - amounts are never
// parsed or computed through binary floating point.
type Amount struct {
	value decimal.Decimal
}

// NewAmountFromString creates an Amount from its decimal string
// representation (e.g. "14.5", "61238"). Negative or unparsable input is
// rejected with ErrInvalidAmount.
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if d.IsNegative() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

// NewAmountFromCents creates an Amount from an integer count of minor units.
func NewAmountFromCents(cents int64) Amount {
	return Amount{value: decimal.NewFromInt(cents).Shift(-minorUnitExponent)}
}

// ZeroAmount returns a zero-value Amount.
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

// Cents converts the amount to an integer count of minor units.
// Precision beyond the minor unit is truncated toward zero, never rounded:
// "0.999" converts to 99 cents. Amounts whose minor-unit representation does
// not fit in an int64 fail with ErrAmountOverflow.
func (a Amount) Cents() (int64, error) {
	shifted := a.value.Shift(minorUnitExponent).Truncate(0)
	bi := shifted.BigInt()
	if !bi.IsInt64() {
		return 0, ErrAmountOverflow
	}
	return bi.Int64(), nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero returns true if the amount is zero
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal returns true if both amounts represent the same value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// Add returns a new Amount with the sum of both amounts.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// String returns the decimal string representation of the amount.
func (a Amount) String() string {
	return a.value.String()
}

// SumCents adds counts of minor units using exact integer addition.
// The inputs are non-negative by construction; a sum that would exceed
// math.MaxInt64 fails with ErrAmountOverflow instead of wrapping.
func SumCents(cents ...int64) (int64, error) {
	var total int64
	for _, c := range cents {
		if c > math.MaxInt64-total {
			return 0, ErrAmountOverflow
		}
		total += c
	}
	return total, nil
}
