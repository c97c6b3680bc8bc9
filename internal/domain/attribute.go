package domain

// PreferenceType orients comparisons of evaluation fields belonging to
// an attribute. Gain attributes prefer larger values, cost attributes
// prefer smaller values, and attributes without preference only support
// equality.
type PreferenceType string

// Supported attribute preference types.
const (
	// PreferenceGain marks an attribute where larger values are better.
	PreferenceGain PreferenceType = "gain"

	// PreferenceCost marks an attribute where smaller values are better.
	PreferenceCost PreferenceType = "cost"

	// PreferenceNone marks an attribute with no preference ordering.
	// Fields of such attributes are mutually "at least as good" only
	// when they are equal.
	PreferenceNone PreferenceType = "none"
)

// MissingValueVariant names the policy governing how an unknown value
// participates in dominance, equality, and aggregation.
type MissingValueVariant string

// Supported missing-value handling policies.
const (
	// MissingMV15 treats an unknown value as dominating, dominated by,
	// and equal to everything when the comparison originates from the
	// unknown value, but never when approached from a known value.
	MissingMV15 MissingValueVariant = "mv1.5"

	// MissingMV2 treats an unknown value as comparable to everything in
	// both directions.
	MissingMV2 MissingValueVariant = "mv2"
)

// EvaluationAttribute describes one column of an information table:
// its identity, value kind, preference direction, activity flag, and
// the policy applied to missing values in its cells.
type EvaluationAttribute struct {
	// Name is the attribute's human-readable identifier.
	Name string

	// Kind is the variant of the known fields this attribute holds
	// (integer, real, enumeration, or pair).
	Kind FieldKind

	// Elements is the ordinal scale of an enumeration attribute; nil for
	// other kinds.
	Elements *ElementList

	// Preference orients comparisons between this attribute's fields.
	Preference PreferenceType

	// Active reports whether the attribute participates in dominance
	// checks. Inactive attributes are skipped by the cone engine.
	Active bool

	// MissingValue is the policy applied to unknown cells of this
	// attribute. Defaults to MissingMV15 when unset.
	MissingValue MissingValueVariant
}

// MissingValuePolicy returns the attribute's missing-value variant,
// falling back to MV1.5 when none was configured.
func (a EvaluationAttribute) MissingValuePolicy() MissingValueVariant {
	if a.MissingValue == "" {
		return MissingMV15
	}
	return a.MissingValue
}
