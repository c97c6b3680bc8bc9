package drsa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-drsa/internal/domain"
)

const carsYAML = `
name: cars
attributes:
  - name: speed
    kind: integer
    preference: gain
    active: true
  - name: price
    kind: real
    preference: cost
    active: true
  - name: quality
    kind: enumeration
    preference: gain
    active: true
    elements: [poor, fair, good]
objects:
  - ["100", "30000.0", "fair"]
  - ["120", "25000.5", "good"]
  - ["90", "?", "poor"]
decisions: [2, 3, 1]
`

func TestFromYAML_BuildsTableAndEngine(t *testing.T) {
	analysis, err := FromYAML([]byte(carsYAML))
	require.NoError(t, err)

	table := analysis.Table()
	assert.Equal(t, 3, table.NumberOfObjects())
	assert.Equal(t, 3, table.NumberOfAttributes())

	speed, err := table.Attribute(0)
	require.NoError(t, err)
	assert.Equal(t, "speed", speed.Name)
	assert.Equal(t, domain.PreferenceGain, speed.Preference)

	cell, err := table.Field(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, cell.(*domain.IntegerField).Value())

	missing, err := table.Field(2, 1)
	require.NoError(t, err)
	assert.IsType(t, &domain.UnknownFieldMV15{}, missing)

	label, err := table.Field(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, label.(*domain.EnumerationField).Value())
}

// TestAnalysis_EndToEnd runs the full pipeline on the cars fixture:
// object 1 dominates object 0 on every criterion, object 2 has an
// unknown price and relates to nothing from the known objects' side.
func TestAnalysis_EndToEnd(t *testing.T) {
	analysis, err := FromYAML([]byte(carsYAML))
	require.NoError(t, err)

	cones := analysis.Cones()
	posD, err := cones.PositiveDCone(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, posD.Members())

	unions, err := analysis.Unions()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, unions.UpwardUnion(2).Members())

	lower, err := unions.LowerUpward(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, lower.Members())

	quality, err := unions.QualityOfApproximation(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, quality, "the fixture has no dominance inconsistencies at this threshold")
}

func TestAnalysis_Precompute(t *testing.T) {
	analysis, err := FromYAML([]byte(carsYAML))
	require.NoError(t, err)

	require.NoError(t, analysis.Precompute(context.Background(), 2))
	evals := analysis.Engine().PredicateEvaluations()
	assert.NotZero(t, evals)

	_, err = analysis.Cones().PositiveInvDCone(2)
	require.NoError(t, err)
	assert.Equal(t, evals, analysis.Engine().PredicateEvaluations(),
		"reads after precompute are cache hits")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, domain.ErrNullArgument)

	analysis, err := FromYAML([]byte(carsYAML))
	require.NoError(t, err)

	_, err = New(analysis.Table(), []int{1})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestAnalysis_UnionsRequireDecisions(t *testing.T) {
	analysis, err := FromYAML([]byte(carsYAML))
	require.NoError(t, err)

	withoutDecisions, err := New(analysis.Table(), nil)
	require.NoError(t, err)

	_, err = withoutDecisions.Unions()
	assert.ErrorIs(t, err, domain.ErrNullArgument)
}

func TestAnalysis_ClassRepresentative(t *testing.T) {
	const yaml = `
name: scores
attributes:
  - name: score
    kind: integer
    preference: gain
    active: true
objects:
  - ["4"]
  - ["6"]
  - ["?"]
`
	analysis, err := FromYAML([]byte(yaml))
	require.NoError(t, err)

	rep, err := analysis.ClassRepresentative([]int{0, 1})
	require.NoError(t, err)
	require.Len(t, rep, 1)
	assert.Equal(t, 5, rep[0].(*domain.IntegerField).Value())

	t.Run("missing value dominates the aggregate", func(t *testing.T) {
		rep, err := analysis.ClassRepresentative([]int{0, 1, 2})
		require.NoError(t, err)
		assert.IsType(t, &domain.UnknownFieldMV15{}, rep[0])
	})

	t.Run("single object is its own representative", func(t *testing.T) {
		rep, err := analysis.ClassRepresentative([]int{1})
		require.NoError(t, err)
		assert.Equal(t, 6, rep[0].(*domain.IntegerField).Value())
	})

	t.Run("empty group", func(t *testing.T) {
		_, err := analysis.ClassRepresentative(nil)
		assert.ErrorIs(t, err, domain.ErrNullArgument)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := analysis.ClassRepresentative([]int{0, 9})
		assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds)
	})
}
