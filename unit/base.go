package unit

import "fmt"

// Base is an atomic, indivisible unit of measurement, e.g. the meter.
// Identity is the id alone; the display strings play no part in equality.
// Base values are immutable and defined once by a catalog.
type Base struct {
	id       int
	name     string
	abbrev   string // caps sensitive, e.g. "kg"
	quantity string // e.g. "mass"
}

// New builds a base unit. The id must be unique across the catalog defining
// it; uniqueness is the catalog's responsibility, not enforced here.
func New(id int, name, abbrev, quantity string) Base {
	return Base{id: id, name: name, abbrev: abbrev, quantity: quantity}
}

func (b Base) ID() int          { return b.id }
func (b Base) Name() string     { return b.name }
func (b Base) Abbrev() string   { return b.abbrev }
func (b Base) Quantity() string { return b.quantity }

// Equal reports whether two base units share the same identity.
func (b Base) Equal(other Base) bool { return b.id == other.id }

// Less orders base units by abbreviation, used for deterministic display of
// multi-unit signatures.
func (b Base) Less(other Base) bool { return b.abbrev < other.abbrev }

// Eq compares against another Base (by id) or a Derived (whose signature must
// be exactly this unit to the first power).
func (b Base) Eq(other any) (bool, error) {
	switch o := other.(type) {
	case Base:
		return b.Equal(o), nil
	case Derived:
		return o.sig.equal(unitMap{b.id: {Unit: b, Power: 1}}), nil
	}

	return false, fmt.Errorf("compare %v == %T: %w", b, other, ErrUnsupportedComparison)
}

// Add sums with a scalar (coefficient 1+n) or with the identical base unit
// (coefficient 2). Any other base unit is dimensionally incompatible.
func (b Base) Add(other any) (Composite, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: 1 + n, unit: b}, nil
	case Base:
		if b.Equal(o) {
			return Composite{coef: 2, unit: b}, nil
		}
		return Composite{}, fmt.Errorf("add %v + %v: %w", b, o, ErrIncompatibleUnits)
	}

	return Composite{}, fmt.Errorf("add %v + %T: %w", b, other, ErrUnsupportedOperand)
}

// Sub mirrors Add: scalar gives coefficient 1-n, the identical base unit
// gives coefficient 0.
func (b Base) Sub(other any) (Composite, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: 1 - n, unit: b}, nil
	case Base:
		if b.Equal(o) {
			return Composite{coef: 0, unit: b}, nil
		}
		return Composite{}, fmt.Errorf("subtract %v - %v: %w", b, o, ErrIncompatibleUnits)
	}

	return Composite{}, fmt.Errorf("subtract %v - %T: %w", b, other, ErrUnsupportedOperand)
}

// Neg negates the unit quantity, yielding -1 of this unit.
func (b Base) Neg() Composite {
	return Composite{coef: -1, unit: b}
}

// Mul combines with another unit, a composite or a scalar through the shared
// combine routine, starting from the signature {b: 1}.
func (b Base) Mul(other any) (Value, error) {
	return combine(b, other, unitMap{b.id: {Unit: b, Power: 1}}, addPower, symbolMul)
}

// Div divides by another unit or a scalar. Division by a Composite is
// undefined on the unit path.
func (b Base) Div(other any) (Value, error) {
	return combine(b, other, unitMap{b.id: {Unit: b, Power: 1}}, subPower, symbolDiv)
}

// Pow raises the unit to an integer power.
func (b Base) Pow(power int) (Value, error) {
	return Pow(b, power)
}

// Float64 converts the bare unit to a plain number, which is always 1.
func (b Base) Float64() float64 { return 1 }

func (b Base) Int() int { return 1 }

func (b Base) String() string {
	return fmt.Sprintf("%s (%s), %s", b.name, b.abbrev, b.quantity)
}

func (Base) isValue() {}
