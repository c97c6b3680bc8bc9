package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gainAttribute(name string) EvaluationAttribute {
	return EvaluationAttribute{
		Name:       name,
		Kind:       KindInteger,
		Preference: PreferenceGain,
		Active:     true,
	}
}

func TestNewInformationTable_Validation(t *testing.T) {
	attrs := []EvaluationAttribute{gainAttribute("price")}

	_, err := NewInformationTable(nil, nil)
	assert.ErrorIs(t, err, ErrNullArgument)

	_, err = NewInformationTable(attrs, [][]EvaluationField{
		{NewIntegerField(1, PreferenceGain), NewIntegerField(2, PreferenceGain)},
	})
	assert.ErrorIs(t, err, ErrInvalidValue, "row width must match attribute count")

	_, err = NewInformationTable(attrs, [][]EvaluationField{{nil}})
	assert.ErrorIs(t, err, ErrNullArgument, "absent cells are rejected")
}

func TestInformationTable_Accessors(t *testing.T) {
	attrs := []EvaluationAttribute{
		gainAttribute("quality"),
		{Name: "comment", Kind: KindInteger, Preference: PreferenceNone, Active: false},
	}
	rows := [][]EvaluationField{
		{NewIntegerField(10, PreferenceGain), NewIntegerField(1, PreferenceNone)},
		{NewIntegerField(20, PreferenceGain), NewIntegerField(2, PreferenceNone)},
	}

	table, err := NewInformationTable(attrs, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumberOfObjects())
	assert.Equal(t, 2, table.NumberOfAttributes())
	assert.Equal(t, []int{0}, table.ActiveAttributeIndices(), "only active attributes participate")

	attr, err := table.Attribute(0)
	require.NoError(t, err)
	assert.Equal(t, "quality", attr.Name)

	field, err := table.Field(1, 0)
	require.NoError(t, err)
	assert.Equal(t, TernaryTrue, field.IsEqualTo(NewIntegerField(20, PreferenceGain)))

	row, err := table.Row(0)
	require.NoError(t, err)
	assert.Len(t, row, 2)
}

func TestInformationTable_IndexErrors(t *testing.T) {
	table, err := NewInformationTable(
		[]EvaluationAttribute{gainAttribute("q")},
		[][]EvaluationField{{NewIntegerField(1, PreferenceGain)}},
	)
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
	}{
		{"object index too large", func() error { _, err := table.Field(1, 0); return err }},
		{"object index negative", func() error { _, err := table.Field(-1, 0); return err }},
		{"attribute index too large", func() error { _, err := table.Field(0, 1); return err }},
		{"attribute accessor out of range", func() error { _, err := table.Attribute(5); return err }},
		{"row accessor out of range", func() error { _, err := table.Row(2); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrIndexOutOfBounds)
		})
	}
}

func TestIndexSet_Operations(t *testing.T) {
	s := NewIndexSetOf(3, 1, 2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(0))
	assert.Equal(t, []int{1, 2, 3}, s.Members(), "members come back sorted")

	subset := NewIndexSetOf(1, 3)
	assert.True(t, subset.IsSubsetOf(s))
	assert.False(t, s.IsSubsetOf(subset))
	assert.True(t, s.Intersects(NewIndexSetOf(0, 2)))
	assert.False(t, s.Intersects(NewIndexSetOf(0, 5)))
	assert.True(t, s.Equal(NewIndexSetOf(1, 2, 3)))
	assert.False(t, s.Equal(subset))

	empty := NewIndexSet(0)
	assert.True(t, empty.IsSubsetOf(s))
	assert.False(t, empty.Intersects(s))
}
