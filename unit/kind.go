package unit

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	KindUnknown KindEnum = iota
	KindNumber
	KindBase
	KindDerived
	KindComposite

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Value is the closed set of unit-bearing operands. Only Base, Derived and
// Composite implement it.
type Value interface {
	Abbrev() string
	Quantity() string
	Float64() float64

	isValue()
}

// Dispatch classifies an operand into its kind. Anything outside the closed
// operand set maps to KindUnknown.
func Dispatch(v any) KindEnum {
	switch v.(type) {
	case int, float64:
		return KindNumber
	case Base:
		return KindBase
	case Derived:
		return KindDerived
	case Composite:
		return KindComposite
	}

	return KindUnknown
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
