package drsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-drsa/infrastructure/fields"
	"github.com/ahrav/go-drsa/internal/domain"
)

func TestLoadTableConfig_Valid(t *testing.T) {
	cfg, err := LoadTableConfig([]byte(carsYAML))
	require.NoError(t, err)

	assert.Equal(t, "cars", cfg.Name)
	require.Len(t, cfg.Attributes, 3)
	assert.Equal(t, "price", cfg.Attributes[1].Name)
	assert.Equal(t, "cost", cfg.Attributes[1].Preference)
	assert.Equal(t, []string{"poor", "fair", "good"}, cfg.Attributes[2].Elements)
	assert.Equal(t, []int{2, 3, 1}, cfg.Decisions)
}

func TestLoadTableConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown top-level field",
			yaml: `
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
objects: []
bogus: true
`,
		},
		{
			name: "missing table name",
			yaml: `
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
`,
		},
		{
			name: "no attributes",
			yaml: `
name: t
attributes: []
`,
		},
		{
			name: "unsupported kind",
			yaml: `
name: t
attributes:
  - name: a
    kind: interval
    preference: gain
    active: true
`,
		},
		{
			name: "unsupported preference",
			yaml: `
name: t
attributes:
  - name: a
    kind: integer
    preference: best
    active: true
`,
		},
		{
			name: "unsupported missing-value policy",
			yaml: `
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
    missing_value: mv3
`,
		},
		{
			name: "enumeration without elements",
			yaml: `
name: t
attributes:
  - name: a
    kind: enumeration
    preference: gain
    active: true
`,
		},
		{
			name: "decision count mismatch",
			yaml: `
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
objects:
  - ["1"]
  - ["2"]
decisions: [1]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTableConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestBuildTable_CellErrors(t *testing.T) {
	t.Run("unparseable cell", func(t *testing.T) {
		cfg, err := LoadTableConfig([]byte(`
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
objects:
  - ["not-a-number"]
`))
		require.NoError(t, err)

		_, err = cfg.BuildTable()
		var parseErr *fields.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "not-a-number", parseErr.Value)
	})

	t.Run("row width mismatch", func(t *testing.T) {
		cfg, err := LoadTableConfig([]byte(`
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
  - name: b
    kind: integer
    preference: cost
    active: true
objects:
  - ["1"]
`))
		require.NoError(t, err)

		_, err = cfg.BuildTable()
		assert.ErrorIs(t, err, domain.ErrInvalidValue)
	})

	t.Run("mv2 policy is honored", func(t *testing.T) {
		cfg, err := LoadTableConfig([]byte(`
name: t
attributes:
  - name: a
    kind: integer
    preference: gain
    active: true
    missing_value: mv2
objects:
  - ["?"]
`))
		require.NoError(t, err)

		table, err := cfg.BuildTable()
		require.NoError(t, err)

		cell, err := table.Field(0, 0)
		require.NoError(t, err)
		assert.IsType(t, &domain.UnknownFieldMV2{}, cell)
	})
}
