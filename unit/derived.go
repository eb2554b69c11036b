package unit

import (
	"fmt"
	"sort"
	"strings"
)

// DimensionlessName is the display name of the unit with an empty signature,
// the multiplicative identity of the algebra.
const DimensionlessName = "𝟙"

// token records one named factor of a derived unit's construction history.
type token struct {
	name  string
	power int
}

// unitMap is a canonical signature: base-unit id to its association. Entries
// with power 0 are never stored.
type unitMap map[int]Assoc

func (m unitMap) clone() unitMap {
	out := make(unitMap, len(m))
	for id, a := range m {
		out[id] = a
	}
	return out
}

func (m unitMap) prune() {
	for id, a := range m {
		if a.Power == 0 {
			delete(m, id)
		}
	}
}

func (m unitMap) equal(other unitMap) bool {
	if len(m) != len(other) {
		return false
	}
	for id, a := range m {
		b, ok := other[id]
		if !ok || a.Power != b.Power {
			return false
		}
	}
	return true
}

// sorted returns the associations ordered by abbreviation then power.
func (m unitMap) sorted() []Assoc {
	out := make([]Assoc, 0, len(m))
	for _, a := range m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// toUnitMap dedupes a list of associations by base-unit identity, summing
// powers for repeats and dropping entries that cancel to zero.
func toUnitMap(bases []Assoc) unitMap {
	out := make(unitMap, len(bases))
	for _, a := range bases {
		if prev, ok := out[a.Unit.id]; ok {
			a.Power += prev.Power
		}
		out[a.Unit.id] = a
	}
	out.prune()
	return out
}

// baseDescription rebuilds an abbreviation from a canonical signature.
func baseDescription(m unitMap) string {
	assocs := m.sorted()
	terms := make([]term, 0, len(assocs))
	for _, a := range assocs {
		terms = append(terms, term{text: a.Unit.abbrev, power: a.Power})
	}
	return joinTerms(terms)
}

// Derived is a unit expressed as a product of base units raised to integer
// powers. The canonical signature is the sole basis for equality; the name
// tokens only record how the unit was built, for display.
type Derived struct {
	tokens   []token
	abbrev   string
	sig      unitMap
	quantity string
}

// NewDerived builds a derived unit from explicit associations. Duplicate base
// units are consolidated by summing powers; zero powers are dropped. The name
// is stored as a single token of power 1.
func NewDerived(name, abbrev string, bases []Assoc, quantity string) Derived {
	return Derived{
		tokens:   []token{{name: name, power: 1}},
		abbrev:   abbrev,
		sig:      toUnitMap(bases),
		quantity: quantity,
	}
}

// Dimensionless returns the unit with an empty signature, displayed as 𝟙.
func Dimensionless() Derived {
	return NewDerived(DimensionlessName, "", nil, DimensionlessName)
}

// Name renders the display name from the construction history: tokens are
// aggregated by name in first-seen order, powers summed, and factors that
// cancel to zero dropped. "meter·second" built by division stays
// "meter/second" rather than decomposing to base units.
func (d Derived) Name() string {
	names := make([]string, 0, len(d.tokens))
	powers := make(map[string]int, len(d.tokens))
	for _, t := range d.tokens {
		if _, ok := powers[t.name]; !ok {
			names = append(names, t.name)
		}
		powers[t.name] += t.power
	}

	terms := make([]term, 0, len(names))
	for _, n := range names {
		if p := powers[n]; p != 0 {
			terms = append(terms, term{text: n, power: p})
		}
	}

	return joinTerms(terms)
}

func (d Derived) Abbrev() string   { return d.abbrev }
func (d Derived) Quantity() string { return d.quantity }

// Bases returns the canonical signature sorted by base-unit id.
func (d Derived) Bases() []Assoc {
	out := make([]Assoc, 0, len(d.sig))
	for _, a := range d.sig {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit.id < out[j].Unit.id })
	return out
}

// IsDimensionless reports whether the signature is empty.
func (d Derived) IsDimensionless() bool { return len(d.sig) == 0 }

// Rename returns a unit with an identical signature but new display fields,
// for aliasing custom composite units ("newton" over kg·m/s²).
func (d Derived) Rename(name, abbrev, quantity string) Derived {
	return NewDerived(name, abbrev, d.Bases(), quantity)
}

// Eq compares canonical signatures only; display fields are irrelevant. The
// integers 1 and 1.0 compare equal to the dimensionless unit.
func (d Derived) Eq(other any) (bool, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		return d.IsDimensionless() && n == 1, nil
	case Base:
		return d.sig.equal(unitMap{o.id: {Unit: o, Power: 1}}), nil
	case Derived:
		return d.sig.equal(o.sig), nil
	case Composite:
		return o.Eq(d)
	}

	return false, fmt.Errorf("compare %v == %T: %w", d, other, ErrUnsupportedComparison)
}

// Add sums with a scalar (coefficient 1+n) or with a derived unit of the
// identical signature (coefficient 2).
func (d Derived) Add(other any) (Composite, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: 1 + n, unit: d}, nil
	case Derived:
		if d.sig.equal(o.sig) {
			return Composite{coef: 2, unit: d}, nil
		}
		return Composite{}, fmt.Errorf("add %v + %v: %w", d, o, ErrIncompatibleUnits)
	}

	return Composite{}, fmt.Errorf("add %v + %T: %w", d, other, ErrUnsupportedOperand)
}

// Sub mirrors Add with coefficients 1-n and 0.
func (d Derived) Sub(other any) (Composite, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: 1 - n, unit: d}, nil
	case Derived:
		if d.sig.equal(o.sig) {
			return Composite{coef: 0, unit: d}, nil
		}
		return Composite{}, fmt.Errorf("subtract %v - %v: %w", d, o, ErrIncompatibleUnits)
	}

	return Composite{}, fmt.Errorf("subtract %v - %T: %w", d, other, ErrUnsupportedOperand)
}

// Neg negates the unit quantity, yielding -1 of this unit.
func (d Derived) Neg() Composite {
	return Composite{coef: -1, unit: d}
}

// Mul combines with another unit, a composite or a scalar, starting from this
// unit's own signature.
func (d Derived) Mul(other any) (Value, error) {
	return combine(d, other, d.sig.clone(), addPower, symbolMul)
}

// Div divides by another unit or a scalar. Division by a Composite is
// undefined on the unit path.
func (d Derived) Div(other any) (Value, error) {
	return combine(d, other, d.sig.clone(), subPower, symbolDiv)
}

// Pow raises the unit to an integer power.
func (d Derived) Pow(power int) (Value, error) {
	return Pow(d, power)
}

// Float64 converts the bare unit to a plain number, which is always 1.
func (d Derived) Float64() float64 { return 1 }

func (d Derived) Int() int { return 1 }

func (d Derived) String() string {
	assocs := d.Bases()
	parts := make([]string, len(assocs))
	for i, a := range assocs {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s (%s), [%s]", d.Name(), d.abbrev, strings.Join(parts, ", "))
}

func (Derived) isValue() {}
