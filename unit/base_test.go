package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siunits/unit"
)

func meter() unit.Base  { return unit.New(1, "meter", "m", "length") }
func second() unit.Base { return unit.New(2, "second", "s", "time") }

func TestBaseIdentity(t *testing.T) {
	t.Parallel()

	t.Run("id alone decides equality", func(t *testing.T) {
		t.Parallel()

		metre := unit.New(1, "metre", "m", "length")
		assert.True(t, meter().Equal(metre))
		assert.False(t, meter().Equal(second()))

		eq, err := meter().Eq(metre)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("equal to a derived unit with signature {self: 1}", func(t *testing.T) {
		t.Parallel()

		d := unit.NewDerived("length", "m", []unit.Assoc{{Unit: meter(), Power: 1}}, "length")
		eq, err := meter().Eq(d)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = second().Eq(d)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("comparison against other types is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := meter().Eq("meter")
		assert.ErrorIs(t, err, unit.ErrUnsupportedComparison)
	})
}

func TestBaseOrdering(t *testing.T) {
	t.Parallel()

	// ordering follows abbreviations, not ids
	kilogram := unit.New(5, "kilogram", "kg", "mass")
	assert.True(t, kilogram.Less(meter()))
	assert.True(t, meter().Less(second()))
	assert.False(t, second().Less(meter()))
}

func TestBaseAddSub(t *testing.T) {
	t.Parallel()

	t.Run("identical units sum to coefficient 2", func(t *testing.T) {
		t.Parallel()

		c, err := meter().Add(meter())
		require.NoError(t, err)
		assert.Equal(t, 2.0, c.Coef())

		eq, err := unit.Eq(c.Unit(), meter())
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("identical units subtract to coefficient 0", func(t *testing.T) {
		t.Parallel()

		c, err := meter().Sub(meter())
		require.NoError(t, err)
		assert.Equal(t, 0.0, c.Coef())
	})

	t.Run("scalars shift the coefficient from 1", func(t *testing.T) {
		t.Parallel()

		c, err := meter().Add(2)
		require.NoError(t, err)
		assert.Equal(t, 3.0, c.Coef())

		c, err = meter().Sub(0.5)
		require.NoError(t, err)
		assert.Equal(t, 0.5, c.Coef())
	})

	t.Run("different base units are incompatible", func(t *testing.T) {
		t.Parallel()

		_, err := meter().Add(second())
		assert.ErrorIs(t, err, unit.ErrIncompatibleUnits)

		_, err = meter().Sub(second())
		assert.ErrorIs(t, err, unit.ErrIncompatibleUnits)
	})

	t.Run("non-operand types are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := meter().Add("two")
		assert.ErrorIs(t, err, unit.ErrUnsupportedOperand)
	})
}

func TestBaseNeg(t *testing.T) {
	t.Parallel()

	c := meter().Neg()
	assert.Equal(t, -1.0, c.Coef())
	assert.Equal(t, "m", c.Abbrev())
}

func TestBaseConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, meter().Float64())
	assert.Equal(t, 1, meter().Int())
	assert.Equal(t, "meter (m), length", meter().String())
}
