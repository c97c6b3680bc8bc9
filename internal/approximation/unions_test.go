package approximation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-drsa/internal/domain"
	"github.com/ahrav/go-drsa/internal/dominance"
	"github.com/ahrav/go-drsa/internal/ports"
)

// gainCones wires a single-attribute gain table into a cone provider.
func gainCones(t *testing.T, values ...int) ports.ConeProvider {
	t.Helper()
	attrs := []domain.EvaluationAttribute{{
		Name:       "score",
		Kind:       domain.KindInteger,
		Preference: domain.PreferenceGain,
		Active:     true,
	}}
	rows := make([][]domain.EvaluationField, len(values))
	for i, v := range values {
		rows[i] = []domain.EvaluationField{domain.NewIntegerField(v, domain.PreferenceGain)}
	}
	table, err := domain.NewInformationTable(attrs, rows)
	require.NoError(t, err)
	engine, err := dominance.NewConeEngine(table)
	require.NoError(t, err)
	return engine
}

func TestUnions_Membership(t *testing.T) {
	unions, err := NewUnions(gainCones(t, 1, 2, 3, 4), []int{1, 1, 2, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, unions.UpwardUnion(2).Members())
	assert.Equal(t, []int{0, 1, 2, 3}, unions.UpwardUnion(1).Members())
	assert.Empty(t, unions.UpwardUnion(3).Members())
	assert.Equal(t, []int{0, 1}, unions.DownwardUnion(1).Members())
	assert.Equal(t, []int{0, 1, 2, 3}, unions.DownwardUnion(2).Members())
}

// TestUnions_ConsistentTable covers a table where class assignment
// agrees with dominance everywhere: approximations are exact, the
// boundaries are empty and the quality of approximation is one.
func TestUnions_ConsistentTable(t *testing.T) {
	unions, err := NewUnions(gainCones(t, 1, 2, 3, 4), []int{1, 1, 2, 2})
	require.NoError(t, err)

	lower, err := unions.LowerUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, lower.Members())

	upper, err := unions.UpperUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, upper.Members())

	boundary, err := unions.BoundaryUpward(2)
	require.NoError(t, err)
	assert.Zero(t, boundary.Len())

	lowerDown, err := unions.LowerDownward(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, lowerDown.Members())

	upperDown, err := unions.UpperDownward(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, upperDown.Members())

	quality, err := unions.QualityOfApproximation(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, quality)
}

// TestUnions_InconsistentTable covers a dominance inconsistency: object
// 0 has a worse evaluation than object 1 but a better class. Both fall
// into the boundary and out of every lower approximation.
func TestUnions_InconsistentTable(t *testing.T) {
	unions, err := NewUnions(gainCones(t, 1, 2, 3), []int{2, 1, 2})
	require.NoError(t, err)

	lower, err := unions.LowerUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, lower.Members())

	upper, err := unions.UpperUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, upper.Members())

	boundary, err := unions.BoundaryUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, boundary.Members())

	lowerDown, err := unions.LowerDownward(1)
	require.NoError(t, err)
	assert.Zero(t, lowerDown.Len())

	upperDown, err := unions.UpperDownward(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, upperDown.Members())

	boundaryDown, err := unions.BoundaryDownward(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, boundaryDown.Members())

	quality, err := unions.QualityOfApproximation(2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, quality, 1e-12)
}

// TestUnions_RoughInclusion checks the defining inclusion chain of a
// rough approximation at every threshold of the fixture.
func TestUnions_RoughInclusion(t *testing.T) {
	unions, err := NewUnions(gainCones(t, 5, 3, 8, 3, 9), []int{2, 1, 3, 2, 3})
	require.NoError(t, err)

	for threshold := 1; threshold <= 3; threshold++ {
		union := unions.UpwardUnion(threshold)
		lower, err := unions.LowerUpward(threshold)
		require.NoError(t, err)
		upper, err := unions.UpperUpward(threshold)
		require.NoError(t, err)
		assert.True(t, lower.IsSubsetOf(union), "lower ⊆ union at %d", threshold)
		assert.True(t, union.IsSubsetOf(upper), "union ⊆ upper at %d", threshold)

		downUnion := unions.DownwardUnion(threshold)
		lowerDown, err := unions.LowerDownward(threshold)
		require.NoError(t, err)
		upperDown, err := unions.UpperDownward(threshold)
		require.NoError(t, err)
		assert.True(t, lowerDown.IsSubsetOf(downUnion), "lower ⊆ union at %d downward", threshold)
		assert.True(t, downUnion.IsSubsetOf(upperDown), "union ⊆ upper at %d downward", threshold)
	}
}

func TestNewUnions_Validation(t *testing.T) {
	cones := gainCones(t, 1, 2)

	_, err := NewUnions(nil, []int{1, 2})
	assert.ErrorIs(t, err, domain.ErrNullArgument)

	_, err = NewUnions(cones, nil)
	assert.ErrorIs(t, err, domain.ErrNullArgument)

	_, err = NewUnions(cones, []int{1})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestQualityOfApproximation_EmptyProviderIsZero(t *testing.T) {
	unions, err := NewUnions(emptyProvider{}, []int{})
	require.NoError(t, err)

	quality, err := unions.QualityOfApproximation(1)
	require.NoError(t, err)
	assert.Zero(t, quality)
}

type emptyProvider struct{}

func (emptyProvider) NumberOfObjects() int { return 0 }
func (emptyProvider) PositiveDCone(int) (*domain.IndexSet, error) {
	return nil, domain.ErrIndexOutOfBounds
}
func (emptyProvider) NegativeDCone(int) (*domain.IndexSet, error) {
	return nil, domain.ErrIndexOutOfBounds
}
func (emptyProvider) PositiveInvDCone(int) (*domain.IndexSet, error) {
	return nil, domain.ErrIndexOutOfBounds
}
func (emptyProvider) NegativeInvDCone(int) (*domain.IndexSet, error) {
	return nil, domain.ErrIndexOutOfBounds
}
