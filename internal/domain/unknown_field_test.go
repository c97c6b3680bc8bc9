package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnknownFieldMV15_Asymmetry verifies the deliberately non-symmetric
// mv_1.5 contract: forward comparisons from the marker are always TRUE,
// reverse comparisons from a known field are always FALSE.
func TestUnknownFieldMV15_Asymmetry(t *testing.T) {
	unknown := NewUnknownFieldMV15()

	knownFields := []KnownSimpleField{
		NewIntegerField(4, PreferenceGain),
		NewIntegerField(-10, PreferenceCost),
		NewRealField(2.5, PreferenceGain),
	}

	for _, known := range knownFields {
		assert.Equal(t, TernaryTrue, unknown.IsAtLeastAsGoodAs(known))
		assert.Equal(t, TernaryTrue, unknown.IsAtMostAsGoodAs(known))
		assert.Equal(t, TernaryTrue, unknown.IsEqualTo(known))

		assert.Equal(t, TernaryFalse, unknown.ReverseIsAtLeastAsGoodAs(known))
		assert.Equal(t, TernaryFalse, unknown.ReverseIsAtMostAsGoodAs(known))
		assert.Equal(t, TernaryFalse, unknown.ReverseIsEqualTo(known))

		// A known receiver compared against the marker routes through the
		// reverse direction and therefore sees FALSE.
		assert.Equal(t, TernaryFalse, known.IsAtLeastAsGoodAs(unknown))
		assert.Equal(t, TernaryFalse, known.IsAtMostAsGoodAs(unknown))
		assert.Equal(t, TernaryFalse, known.IsEqualTo(unknown))
	}
}

func TestUnknownFieldMV15_Comparators(t *testing.T) {
	unknown := NewUnknownFieldMV15()
	known := NewIntegerField(4, PreferenceGain)

	cmp, err := unknown.CompareToEx(known)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp, "the marker ties with any simple field")

	// There is no defined order from a known field back onto the marker.
	_, err = unknown.ReverseCompareToEx(known)
	assert.ErrorIs(t, err, ErrUncomparable)

	_, err = known.CompareToEx(unknown)
	assert.ErrorIs(t, err, ErrUncomparable,
		"known fields route comparator calls through the marker's reverse direction")

	_, err = unknown.CompareToEx(nil)
	assert.ErrorIs(t, err, ErrNullArgument)
	_, err = unknown.ReverseCompareToEx(nil)
	assert.ErrorIs(t, err, ErrNullArgument)
}

// TestUnknownFieldIdentity verifies that markers of one variant are
// mutually equal and hash identically regardless of origin.
func TestUnknownFieldIdentity(t *testing.T) {
	first := NewUnknownFieldMV15()
	second := NewUnknownFieldMV15()

	assert.Equal(t, TernaryTrue, first.IsEqualTo(second))
	assert.Equal(t, TernaryTrue, second.IsEqualTo(first))
	assert.Equal(t, first.Hash(), second.Hash())

	mv2First := NewUnknownFieldMV2()
	mv2Second := NewUnknownFieldMV2()
	assert.Equal(t, mv2First.Hash(), mv2Second.Hash())

	assert.NotEqual(t, first.Hash(), mv2First.Hash(),
		"different missing-value variants are distinct markers")
}

// TestUnknownFieldMV2_Symmetry verifies that the mv_2 policy is
// comparable in both directions.
func TestUnknownFieldMV2_Symmetry(t *testing.T) {
	unknown := NewUnknownFieldMV2()
	known := NewIntegerField(4, PreferenceGain)

	assert.Equal(t, TernaryTrue, unknown.IsAtLeastAsGoodAs(known))
	assert.Equal(t, TernaryTrue, unknown.IsAtMostAsGoodAs(known))
	assert.Equal(t, TernaryTrue, unknown.IsEqualTo(known))

	assert.Equal(t, TernaryTrue, unknown.ReverseIsAtLeastAsGoodAs(known))
	assert.Equal(t, TernaryTrue, unknown.ReverseIsAtMostAsGoodAs(known))
	assert.Equal(t, TernaryTrue, unknown.ReverseIsEqualTo(known))

	assert.Equal(t, TernaryTrue, known.IsAtLeastAsGoodAs(unknown))
	assert.Equal(t, TernaryTrue, known.IsEqualTo(unknown))

	cmp, err := unknown.CompareToEx(known)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	cmp, err = unknown.ReverseCompareToEx(known)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	cmp, err = known.CompareToEx(unknown)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestUnknownFields_NonSimpleArgumentsAreUncomparable(t *testing.T) {
	unknown := NewUnknownFieldMV15()
	pair, err := NewPairField(NewIntegerField(1, PreferenceGain), NewIntegerField(2, PreferenceGain))
	require.NoError(t, err)

	assert.Equal(t, TernaryUncomparable, unknown.IsAtLeastAsGoodAs(pair))
	assert.Equal(t, TernaryUncomparable, unknown.IsEqualTo(pair))
	assert.Equal(t, TernaryUncomparable, unknown.IsAtLeastAsGoodAs(nil))

	_, err = unknown.CompareToEx(pair)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
