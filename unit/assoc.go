package unit

import "fmt"

// Assoc associates a base unit with its integer power. It is the element type
// of a derived unit's canonical signature.
type Assoc struct {
	Unit  Base
	Power int
}

// Less orders associations by unit abbreviation, then by power.
func (a Assoc) Less(other Assoc) bool {
	if a.Unit.Equal(other.Unit) {
		return a.Power < other.Power
	}

	return a.Unit.Less(other.Unit)
}

func (a Assoc) String() string {
	return fmt.Sprintf("%s: %d", a.Unit.abbrev, a.Power)
}
