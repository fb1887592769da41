package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity represents an amount of stock (or a per-day rate) in the item's unit
type Quantity decimal.Decimal

// ZeroQuantity is an empty stock level
var ZeroQuantity = Quantity(decimal.Zero)

// NewQuantity wraps a decimal as a Quantity
func NewQuantity(value decimal.Decimal) Quantity {
	return Quantity(value)
}

// QuantityFromFloat builds a Quantity from a float value
func QuantityFromFloat(value float64) Quantity {
	return Quantity(decimal.NewFromFloat(value))
}

// QuantityFromInt builds a Quantity from an integer value
func QuantityFromInt(value int64) Quantity {
	return Quantity(decimal.NewFromInt(value))
}

// ParseQuantity parses a plain decimal number, accepting a comma as the decimal
// separator. Exponent notation is rejected.
func ParseQuantity(s string) (Quantity, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if strings.ContainsAny(normalized, "eE") {
		return ZeroQuantity, fmt.Errorf("invalid number %q", s)
	}
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return ZeroQuantity, fmt.Errorf("invalid number %q", s)
	}
	return Quantity(value), nil
}

// Decimal returns the underlying decimal value
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.Decimal(q)
}

// String returns the plain decimal representation
func (q Quantity) String() string {
	return decimal.Decimal(q).String()
}

// Equal reports whether both quantities hold the same value
func (q Quantity) Equal(other Quantity) bool {
	return q.Decimal().Equal(other.Decimal())
}

// IsNegative reports whether q < 0
func (q Quantity) IsNegative() bool {
	return q.Decimal().IsNegative()
}

// IsPositive reports whether q > 0
func (q Quantity) IsPositive() bool {
	return q.Decimal().IsPositive()
}

// Add returns q + other
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity(q.Decimal().Add(other.Decimal()))
}

// Sub returns q - other
func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity(q.Decimal().Sub(other.Decimal()))
}

// Mul returns q * other
func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity(q.Decimal().Mul(other.Decimal()))
}

// MulInt returns q * n
func (q Quantity) MulInt(n int) Quantity {
	return Quantity(q.Decimal().Mul(decimal.NewFromInt(int64(n))))
}

// Round rounds half away from zero to the given number of decimal places
func (q Quantity) Round(places int32) Quantity {
	return Quantity(q.Decimal().Round(places))
}

// ClampZero returns q, or zero when q is negative
func (q Quantity) ClampZero() Quantity {
	if q.IsNegative() {
		return ZeroQuantity
	}
	return q
}

// GreaterThanOne is used for unit pluralisation
func (q Quantity) GreaterThanOne() bool {
	return q.Decimal().GreaterThan(decimal.NewFromInt(1))
}

// MarshalJSON writes the quantity as a bare JSON number
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalJSON accepts both bare and quoted numbers
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var value decimal.Decimal
	if err := value.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid quantity %s: %w", string(data), err)
	}
	*q = Quantity(value)
	return nil
}
