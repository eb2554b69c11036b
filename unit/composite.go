package unit

import (
	"fmt"
	"strconv"
)

// Composite is a numeric coefficient paired with a unit, representing a
// concrete physical quantity such as 9.8 m/s².
type Composite struct {
	coef float64
	unit Value // always a Base or Derived
}

// NewComposite pairs a coefficient with a unit. The unit must be a Base or
// Derived; composites do not nest.
func NewComposite(coef float64, u Value) Composite {
	switch u.(type) {
	case Base, Derived:
		return Composite{coef: coef, unit: u}
	}

	panic(fmt.Sprintf("composite unit must be a base or derived unit, got %T", u))
}

func (c Composite) Coef() float64    { return c.coef }
func (c Composite) Unit() Value      { return c.unit }
func (c Composite) Abbrev() string   { return c.unit.Abbrev() }
func (c Composite) Quantity() string { return c.unit.Quantity() }

// Mul multiplies by a unit (coefficient unchanged), another composite (both
// coefficients and units combine) or a scalar (coefficient only).
func (c Composite) Mul(other any) (Composite, error) {
	switch o := other.(type) {
	case Base, Derived:
		u, err := Mul(c.unit, other)
		if err != nil {
			return Composite{}, err
		}
		return Composite{coef: c.coef, unit: u}, nil
	case Composite:
		u, err := Mul(c.unit, o.unit)
		if err != nil {
			return Composite{}, err
		}
		return Composite{coef: c.coef * o.coef, unit: u}, nil
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: c.coef * n, unit: c.unit}, nil
	}

	return Composite{}, fmt.Errorf("multiply %v * %T: %w", c, other, ErrUnsupportedOperand)
}

// Div mirrors Mul with coefficients and exponents inverted.
func (c Composite) Div(other any) (Composite, error) {
	switch o := other.(type) {
	case Base, Derived:
		u, err := Div(c.unit, other)
		if err != nil {
			return Composite{}, err
		}
		return Composite{coef: c.coef, unit: u}, nil
	case Composite:
		u, err := Div(c.unit, o.unit)
		if err != nil {
			return Composite{}, err
		}
		return Composite{coef: c.coef / o.coef, unit: u}, nil
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: c.coef / n, unit: c.unit}, nil
	}

	return Composite{}, fmt.Errorf("divide %v / %T: %w", c, other, ErrUnsupportedOperand)
}

// Add sums coefficients. Two composites must carry equal units; a bare scalar
// is accepted by convention, the units assumed compatible (a scalar carries
// no signature to check against).
func (c Composite) Add(other any) (Composite, error) {
	switch o := other.(type) {
	case Composite:
		same, err := Eq(c.unit, o.unit)
		if err != nil {
			return Composite{}, err
		}
		if !same {
			return Composite{}, fmt.Errorf("add %v + %v: %w", c.unit, o.unit, ErrIncompatibleUnits)
		}
		return Composite{coef: c.coef + o.coef, unit: c.unit}, nil
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: c.coef + n, unit: c.unit}, nil
	}

	return Composite{}, fmt.Errorf("add %v + %T: %w", c, other, ErrUnsupportedOperand)
}

// Sub mirrors Add.
func (c Composite) Sub(other any) (Composite, error) {
	switch o := other.(type) {
	case Composite:
		same, err := Eq(c.unit, o.unit)
		if err != nil {
			return Composite{}, err
		}
		if !same {
			return Composite{}, fmt.Errorf("subtract %v - %v: %w", c.unit, o.unit, ErrIncompatibleUnits)
		}
		return Composite{coef: c.coef - o.coef, unit: c.unit}, nil
	case int, float64:
		n, _ := asFloat(other)
		return Composite{coef: c.coef - n, unit: c.unit}, nil
	}

	return Composite{}, fmt.Errorf("subtract %v - %T: %w", c, other, ErrUnsupportedOperand)
}

// Neg negates the coefficient.
func (c Composite) Neg() Composite {
	return Composite{coef: -c.coef, unit: c.unit}
}

// Pow raises both coefficient and unit to an integer power.
func (c Composite) Pow(power int) (Value, error) {
	return Pow(c, power)
}

// Eq compares coefficient and unit together. A plain number matches only when
// the unit is dimensionless and the coefficient agrees; a bare unit matches
// when the coefficient is 1 and the units are equal.
func (c Composite) Eq(other any) (bool, error) {
	switch o := other.(type) {
	case int, float64:
		n, _ := asFloat(other)
		d, ok := c.unit.(Derived)
		return ok && d.IsDimensionless() && c.coef == n, nil
	case Composite:
		same, err := Eq(c.unit, o.unit)
		if err != nil {
			return false, err
		}
		return same && c.coef == o.coef, nil
	case Base, Derived:
		same, err := Eq(c.unit, other)
		if err != nil {
			return false, err
		}
		return same && c.coef == 1, nil
	}

	return false, fmt.Errorf("compare %v == %T: %w", c, other, ErrUnsupportedComparison)
}

// Float64 converts to a plain number: the coefficient.
func (c Composite) Float64() float64 { return c.coef }

// Int truncates the coefficient.
func (c Composite) Int() int { return int(c.coef) }

func (c Composite) String() string {
	return strconv.FormatFloat(c.coef, 'g', -1, 64) + c.unit.Abbrev()
}

func (Composite) isValue() {}
