package domain

// FieldKind identifies the concrete variant of an evaluation field.
// The set of kinds is closed; comparison and aggregation dispatch
// exhaustively over it.
type FieldKind string

// The closed set of evaluation field variants.
const (
	// KindInteger is a known integer value.
	KindInteger FieldKind = "integer"

	// KindReal is a known real (float64) value.
	KindReal FieldKind = "real"

	// KindEnumeration is a known ordinal value over a shared element list.
	KindEnumeration FieldKind = "enumeration"

	// KindPair is a composite of two simple fields, e.g. interval bounds.
	KindPair FieldKind = "pair"

	// KindUnknownMV15 is a missing-value marker under the mv_1.5 policy.
	KindUnknownMV15 FieldKind = "unknown_mv1.5"

	// KindUnknownMV2 is a missing-value marker under the mv_2 policy.
	KindUnknownMV2 FieldKind = "unknown_mv2"

	// KindNone is used in error reports when an operand was absent.
	KindNone FieldKind = "none"
)

// kindOf returns the kind of a possibly-nil field for error reporting.
func kindOf(f EvaluationField) FieldKind {
	if f == nil {
		return KindNone
	}
	return f.Kind()
}

// EvaluationField is the value held by one cell of an information table.
// Every variant exposes three-valued comparisons, an extended comparator,
// and the entry point into aggregation dispatch.
//
// The ternary comparisons have no error channel; an absent (nil) argument
// yields TernaryUncomparable, while the error-returning operations report
// ErrNullArgument instead.
type EvaluationField interface {
	// Kind returns the field's concrete variant.
	Kind() FieldKind

	// IsAtLeastAsGoodAs reports whether this field is at least as good as
	// the other under the field's preference orientation.
	IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue

	// IsAtMostAsGoodAs reports whether this field is at most as good as
	// the other.
	IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue

	// IsEqualTo reports whether this field is equal to the other.
	IsEqualTo(other EvaluationField) TernaryLogicValue

	// CompareToEx is a total-order-style comparator. Between two mutually
	// comparable known fields it returns the natural sign of the value
	// difference. A missing-value marker compared to any compatible field
	// returns 0. Incompatible kinds fail with ErrTypeMismatch, absent
	// arguments with ErrNullArgument.
	CompareToEx(other EvaluationField) (int, error)

	// Calculate is the entry point into aggregation dispatch. The first
	// dispatch is on this field's concrete variant; the second happens
	// inside the calculator on the other field's variant.
	Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error)

	// Hash returns a hash consistent with IsEqualTo for same-kind fields.
	// All markers of one missing-value variant share a single hash value.
	Hash() uint64

	// String renders the field for logs and error messages.
	String() string
}

// SimpleField is a single-valued evaluation field: a known value or a
// missing-value marker. Simple fields additionally support the reverse
// comparison direction, used when a known field must be compared against
// this field without dispatching on this field's forward operations first.
type SimpleField interface {
	EvaluationField

	// ReverseIsAtLeastAsGoodAs reports whether the other, known field is
	// at least as good as this one.
	ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue

	// ReverseIsAtMostAsGoodAs reports whether the other, known field is
	// at most as good as this one.
	ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue

	// ReverseIsEqualTo reports whether the other, known field is equal to
	// this one.
	ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue

	// ReverseCompareToEx compares the other, known field to this one.
	// For the mv_1.5 marker there is no defined order from a known field
	// back onto the marker, so it fails with ErrUncomparable.
	ReverseCompareToEx(other KnownSimpleField) (int, error)
}

// KnownSimpleField is a simple field holding an actual value, as opposed
// to a missing-value marker. The unexported marker method closes the set
// of implementations to this package.
type KnownSimpleField interface {
	SimpleField

	// knownSimpleField restricts implementations to the known variants.
	knownSimpleField()
}

// FieldCalculator is the second hop of the aggregation double dispatch.
// A field's Calculate method selects the calculator method matching its
// own variant; the calculator then inspects the second operand's variant.
// MeanCalculator in infrastructure/calculators is the canonical
// implementation; alternative aggregation policies implement this
// interface with different pairing rules.
type FieldCalculator interface {
	CalculateInteger(first *IntegerField, second EvaluationField) (EvaluationField, error)
	CalculateReal(first *RealField, second EvaluationField) (EvaluationField, error)
	CalculateEnumeration(first *EnumerationField, second EvaluationField) (EvaluationField, error)
	CalculatePair(first *PairField, second EvaluationField) (EvaluationField, error)
	CalculateUnknownMV15(first *UnknownFieldMV15, second EvaluationField) (EvaluationField, error)
	CalculateUnknownMV2(first *UnknownFieldMV2, second EvaluationField) (EvaluationField, error)
}

// checkCalculateArgs guards the aggregation entry point: both the
// calculator and the second operand must be present before any variant
// dispatch occurs.
func checkCalculateArgs(receiver EvaluationField, calculator FieldCalculator, other EvaluationField) error {
	if calculator == nil || other == nil {
		return NewCalculationError(kindOf(receiver), kindOf(other), ErrNullArgument)
	}
	return nil
}
