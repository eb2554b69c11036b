package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siunits/catalog"
	"siunits/unit"
)

func TestBaseUnitIDsAreUnique(t *testing.T) {
	t.Parallel()

	bases := []unit.Base{
		catalog.Meter, catalog.Kilogram, catalog.Second, catalog.Ampere,
		catalog.Kelvin, catalog.Mole, catalog.Candela,
	}

	seen := map[int]string{}
	for _, b := range bases {
		prev, dup := seen[b.ID()]
		assert.False(t, dup, "id %d used by both %s and %s", b.ID(), prev, b.Name())
		seen[b.ID()] = b.Name()
	}
}

func TestNewton(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "newton", catalog.Newton.Name())
	assert.Equal(t, "N", catalog.Newton.Abbrev())
	assert.Equal(t, "force", catalog.Newton.Quantity())

	assert.Equal(t, []unit.Assoc{
		{Unit: catalog.Meter, Power: 1},
		{Unit: catalog.Kilogram, Power: 1},
		{Unit: catalog.Second, Power: -2},
	}, catalog.Newton.Bases())
}

func TestDerivedUnitsCompose(t *testing.T) {
	t.Parallel()

	t.Run("joule is newton times meter", func(t *testing.T) {
		t.Parallel()

		j, err := unit.Mul(catalog.Newton, catalog.Meter)
		require.NoError(t, err)

		eq, err := catalog.Joule.Eq(j)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("hertz is an inverse second", func(t *testing.T) {
		t.Parallel()

		inv, err := unit.Pow(catalog.Second, -1)
		require.NoError(t, err)

		eq, err := catalog.Hertz.Eq(inv)
		require.NoError(t, err)
		assert.True(t, eq)
	})

	t.Run("watt balances volt times ampere", func(t *testing.T) {
		t.Parallel()

		va, err := unit.Mul(catalog.Volt, catalog.Ampere)
		require.NoError(t, err)

		eq, err := catalog.Watt.Eq(va)
		require.NoError(t, err)
		assert.True(t, eq)
	})
}

func TestPascalSignature(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []unit.Assoc{
		{Unit: catalog.Meter, Power: -1},
		{Unit: catalog.Kilogram, Power: 1},
		{Unit: catalog.Second, Power: -2},
	}, catalog.Pascal.Bases())
}

func TestRenamedUnitsStayAlgebraic(t *testing.T) {
	t.Parallel()

	// 2 N + 3 N, then work done over a meter
	force, err := unit.Mul(2, catalog.Newton)
	require.NoError(t, err)
	more, err := unit.Mul(3, catalog.Newton)
	require.NoError(t, err)

	total, err := force.(unit.Composite).Add(more.(unit.Composite))
	require.NoError(t, err)
	assert.Equal(t, 5.0, total.Coef())

	work, err := total.Mul(catalog.Meter)
	require.NoError(t, err)

	eq, err := catalog.Joule.Eq(work.Unit())
	require.NoError(t, err)
	assert.True(t, eq)
	assert.Equal(t, 5.0, work.Coef())
}
