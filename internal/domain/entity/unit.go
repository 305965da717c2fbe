package entity

import "fmt"

// Unit is a unit of measure for a stock item.
type Unit string

// DefaultUnit is the unit preselected on a fresh article form.
const DefaultUnit Unit = "pièces"

// units is the closed set of selectable units. Order is significant: it is
// the order in which the units are offered to the user.
var units = [...]Unit{
	"pièces",
	"kg",
	"litres",
	"mètres",
	"boîtes",
	"paquets",
	"tubes",
	"bouteilles",
	"cartons",
	"sacs",
}

// Units returns the selectable units in their fixed order.
// The returned slice is a copy and may be modified by the caller.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units[:])
	return out
}

// UnitLabels returns Units as plain strings.
func UnitLabels() []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, string(u))
	}
	return out
}

// Valid reports whether u belongs to the closed unit set.
func (u Unit) Valid() bool {
	for _, known := range units {
		if u == known {
			return true
		}
	}
	return false
}

// ParseUnit validates s against the unit set.
// An empty string resolves to DefaultUnit.
func ParseUnit(s string) (Unit, error) {
	if s == "" {
		return DefaultUnit, nil
	}
	u := Unit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return u, nil
}
