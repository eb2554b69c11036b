// Package catalog defines the SI base units and a handful of named derived
// units on top of the unit algebra. It only names dimensions; conversion
// factors between unit systems live elsewhere.
package catalog

import (
	"fmt"

	"siunits/unit"
)

// The seven SI base units. Ids are stable and unique within this catalog.
var (
	Meter    = unit.New(1, "meter", "m", "length")
	Kilogram = unit.New(2, "kilogram", "kg", "mass")
	Second   = unit.New(3, "second", "s", "time")
	Ampere   = unit.New(4, "ampere", "A", "electric current")
	Kelvin   = unit.New(5, "kelvin", "K", "temperature")
	Mole     = unit.New(6, "mole", "mol", "amount of substance")
	Candela  = unit.New(7, "candela", "cd", "luminous intensity")
)

// Named derived units, built through the public operators and renamed.
var (
	Hertz   = derived(unit.Pow(Second, -1)).Rename("hertz", "Hz", "frequency")
	Newton  = derived(unit.Div(derived(unit.Mul(Kilogram, Meter)), derived(unit.Pow(Second, 2)))).Rename("newton", "N", "force")
	Pascal  = derived(unit.Div(Newton, derived(unit.Pow(Meter, 2)))).Rename("pascal", "Pa", "pressure")
	Joule   = derived(unit.Mul(Newton, Meter)).Rename("joule", "J", "energy")
	Watt    = derived(unit.Div(Joule, Second)).Rename("watt", "W", "power")
	Coulomb = derived(unit.Mul(Ampere, Second)).Rename("coulomb", "C", "electric charge")
	Volt    = derived(unit.Div(Watt, Ampere)).Rename("volt", "V", "electric potential")
)

// derived unwraps an operator result into a Derived. Catalog definitions are
// static, so a failure here is a programming error.
func derived(v unit.Value, err error) unit.Derived {
	if err != nil {
		panic(err)
	}

	d, ok := v.(unit.Derived)
	if !ok {
		panic(fmt.Sprintf("catalog definition produced %T, want a derived unit", v))
	}

	return d
}
