package entities

import (
	"fmt"
	"strings"
)

// Unit is the unit of measure a stock item is counted in
type Unit string

// Canonical unit values as stored in the record store
const (
	UnitSack     Unit = "sack"
	UnitKilogram Unit = "kilogram"
	UnitLiter    Unit = "liter"
)

// Units lists the accepted units in display order
var Units = []Unit{UnitSack, UnitKilogram, UnitLiter}

var unitAliases = map[string]Unit{
	"sack":     UnitSack,
	"kg":       UnitKilogram,
	"kilogram": UnitKilogram,
	"l":        UnitLiter,
	"liter":    UnitLiter,
	"litre":    UnitLiter,
}

// ParseUnit resolves a unit name case-insensitively, accepting common abbreviations
func ParseUnit(s string) (Unit, error) {
	if unit, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return unit, nil
	}
	return "", fmt.Errorf("invalid unit %q, choose one of: sack, kg, liter", s)
}

// IsValid reports whether u is one of the known units
func (u Unit) IsValid() bool {
	switch u {
	case UnitSack, UnitKilogram, UnitLiter:
		return true
	default:
		return false
	}
}

func (u Unit) String() string {
	return string(u)
}

// Label returns the unit name, pluralised for quantities greater than one
func (u Unit) Label(q Quantity) string {
	name := string(u)
	if q.GreaterThanOne() && !strings.HasSuffix(name, "s") {
		return name + "s"
	}
	return name
}
