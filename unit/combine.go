package unit

import "fmt"

const (
	symbolMul = "·"
	symbolDiv = "/"
)

func addPower(a, b int) int { return a + b }
func subPower(a, b int) int { return a - b }

// combine is the shared multiply/divide routine. The left operand arrives
// pre-expanded into acc ({left: 1} for a bare base unit, a copy of the own
// signature for a derived unit); the right operand's exponents are merged in
// with op. The caller must own acc: it is consumed.
func combine(left Value, other any, acc unitMap, op func(a, b int) int, symbol string) (Value, error) {
	var rightQuantity string

	switch o := other.(type) {
	case Base:
		if prev, ok := acc[o.id]; ok {
			prev.Power = op(prev.Power, 1)
			acc[o.id] = prev
		} else {
			power := 1
			if symbol == symbolDiv {
				power = -1
			}
			acc[o.id] = Assoc{Unit: o, Power: power}
		}
		rightQuantity = o.quantity

	case Derived:
		for _, a := range o.sig {
			if prev, ok := acc[a.Unit.id]; ok {
				prev.Power = op(prev.Power, a.Power)
				acc[a.Unit.id] = prev
			} else {
				power := a.Power
				if symbol == symbolDiv {
					power = -power
				}
				acc[a.Unit.id] = Assoc{Unit: a.Unit, Power: power}
			}
		}
		rightQuantity = o.quantity

	case Composite:
		if symbol == symbolDiv {
			return nil, fmt.Errorf("divide %v / %v: %w", left, o, ErrUndefinedOperation)
		}
		// Coefficient handling lives in Composite; flip the operands.
		res, err := o.Mul(left)
		if err != nil {
			return nil, err
		}
		return res, nil

	case int, float64:
		// A scalar never alters the dimensional signature.
		n, _ := asFloat(other)
		if symbol == symbolDiv {
			return Composite{coef: 1 / n, unit: left}, nil
		}
		return Composite{coef: n, unit: left}, nil

	default:
		return nil, fmt.Errorf("combine %v %s %T: %w", left, symbol, other, ErrUnsupportedOperand)
	}

	acc.prune()
	if len(acc) == 0 {
		return Dimensionless(), nil
	}

	result := Derived{
		abbrev:   baseDescription(acc),
		sig:      acc,
		quantity: left.Quantity() + " " + symbol + " " + rightQuantity,
	}
	result.tokens = mergeTokens(left, other, symbol)

	return result, nil
}

// mergeTokens concatenates the display histories of both operands, negating
// the right side's powers under division. The dimensionless unit never
// appears in a display name.
func mergeTokens(left Value, right any, symbol string) []token {
	sign := 1
	if symbol == symbolDiv {
		sign = -1
	}

	var merged []token
	switch l := left.(type) {
	case Base:
		merged = append(merged, token{name: l.name, power: 1})
	case Derived:
		merged = append(merged, l.tokens...)
	}

	switch r := right.(type) {
	case Base:
		merged = append(merged, token{name: r.name, power: sign})
	case Derived:
		for _, t := range r.tokens {
			merged = append(merged, token{name: t.name, power: sign * t.power})
		}
	}

	kept := merged[:0]
	for _, t := range merged {
		if t.name != DimensionlessName {
			kept = append(kept, t)
		}
	}

	return kept
}

// Pow raises a unit or composite to an integer power by folding the combine
// routine |power| times from the dimensionless unit. Power 0 yields the
// dimensionless unit directly.
func Pow(v any, power int) (Value, error) {
	switch o := v.(type) {
	case Base, Derived:
		var result Value = Dimensionless()
		var err error
		for i := 0; i < abs(power); i++ {
			if power > 0 {
				result, err = Mul(result, v)
			} else {
				result, err = Div(result, v)
			}
			if err != nil {
				return nil, err
			}
		}
		return result, nil

	case Composite:
		u, err := Pow(o.unit, power)
		if err != nil {
			return nil, err
		}
		coef := 1.0
		for i := 0; i < abs(power); i++ {
			if power > 0 {
				coef *= o.coef
			} else {
				coef /= o.coef
			}
		}
		return Composite{coef: coef, unit: u}, nil
	}

	return nil, fmt.Errorf("raise %T to a power: %w", v, ErrUnsupportedOperand)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Add dispatches an additive combination over the closed operand set,
// covering the scalar-on-the-left form (n + unit behaves as unit + n).
func Add(left, right any) (Value, error) {
	switch l := left.(type) {
	case Base:
		return l.Add(right)
	case Derived:
		return l.Add(right)
	case Composite:
		return l.Add(right)
	case int, float64:
		switch r := right.(type) {
		case Base:
			return r.Add(left)
		case Derived:
			return r.Add(left)
		case Composite:
			return r.Add(left)
		}
	}

	return nil, fmt.Errorf("add %T + %T: %w", left, right, ErrUnsupportedOperand)
}

// Sub dispatches a subtractive combination over the closed operand set.
func Sub(left, right any) (Value, error) {
	switch l := left.(type) {
	case Base:
		return l.Sub(right)
	case Derived:
		return l.Sub(right)
	case Composite:
		return l.Sub(right)
	case int, float64:
		switch r := right.(type) {
		case Base:
			return r.Sub(left)
		case Derived:
			return r.Sub(left)
		case Composite:
			return r.Sub(left)
		}
	}

	return nil, fmt.Errorf("subtract %T - %T: %w", left, right, ErrUnsupportedOperand)
}

// Mul dispatches a multiplication over the closed operand set. Multiplication
// commutes, so the scalar-on-the-left form reuses the unit's own method.
func Mul(left, right any) (Value, error) {
	switch l := left.(type) {
	case Base:
		return l.Mul(right)
	case Derived:
		return l.Mul(right)
	case Composite:
		return l.Mul(right)
	case int, float64:
		switch r := right.(type) {
		case Base:
			return r.Mul(left)
		case Derived:
			return r.Mul(left)
		case Composite:
			return r.Mul(left)
		}
	}

	return nil, fmt.Errorf("multiply %T * %T: %w", left, right, ErrUnsupportedOperand)
}

// Div dispatches a division over the closed operand set. A scalar divided by
// a unit inverts the unit; a scalar divided by a composite also inverts the
// coefficient.
func Div(left, right any) (Value, error) {
	switch l := left.(type) {
	case Base:
		return l.Div(right)
	case Derived:
		return l.Div(right)
	case Composite:
		return l.Div(right)
	case int, float64:
		n, _ := asFloat(left)
		switch r := right.(type) {
		case Base:
			inv, err := Pow(r, -1)
			if err != nil {
				return nil, err
			}
			return Composite{coef: n, unit: inv}, nil
		case Derived:
			inv, err := Pow(r, -1)
			if err != nil {
				return nil, err
			}
			return Composite{coef: n, unit: inv}, nil
		case Composite:
			inv, err := Pow(r.unit, -1)
			if err != nil {
				return nil, err
			}
			return Composite{coef: n / r.coef, unit: inv}, nil
		}
	}

	return nil, fmt.Errorf("divide %T / %T: %w", left, right, ErrUnsupportedOperand)
}

// Eq dispatches an equality test over the closed operand set.
func Eq(left, right any) (bool, error) {
	switch l := left.(type) {
	case Base:
		return l.Eq(right)
	case Derived:
		return l.Eq(right)
	case Composite:
		return l.Eq(right)
	case int, float64:
		switch r := right.(type) {
		case Base:
			return r.Eq(left)
		case Derived:
			return r.Eq(left)
		case Composite:
			return r.Eq(left)
		}
	}

	return false, fmt.Errorf("compare %T == %T: %w", left, right, ErrUnsupportedComparison)
}
