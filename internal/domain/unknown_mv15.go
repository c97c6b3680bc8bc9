package domain

import "hash/fnv"

var _ SimpleField = (*UnknownFieldMV15)(nil)

// hashMV15 is shared by every mv_1.5 marker: the marker's identity is
// its variant, not any payload or originating attribute.
var hashMV15 = func() uint64 {
	h := fnv.New64a()
	h.Write([]byte("unknown:mv1.5"))
	return h.Sum64()
}()

// UnknownFieldMV15 is a missing-value marker handled according to the
// mv_1.5 approach: an object y dominates x iff on every condition
// criterion q, q(y) is not worse than q(x) or q(y) is unknown.
//
// The relation is deliberately non-symmetric. Compared from the marker's
// side, an unknown value is at least as good as, at most as good as,
// and equal to every simple field. Approached from a known value, all
// three reverse relations are FALSE, which keeps rough-set lower
// approximations conservative: missing data never grants dominance in
// the direction that would enlarge a lower approximation.
type UnknownFieldMV15 struct{}

// NewUnknownFieldMV15 creates an mv_1.5 missing-value marker.
func NewUnknownFieldMV15() *UnknownFieldMV15 { return &UnknownFieldMV15{} }

// Kind implements EvaluationField.
func (f *UnknownFieldMV15) Kind() FieldKind { return KindUnknownMV15 }

// comparableWith reports whether the other field participates in simple
// field comparisons at all.
func (f *UnknownFieldMV15) comparableWith(other EvaluationField) bool {
	if other == nil {
		return false
	}
	_, ok := other.(SimpleField)
	return ok
}

// IsAtLeastAsGoodAs implements EvaluationField: TRUE against any simple
// field, UNCOMPARABLE otherwise.
func (f *UnknownFieldMV15) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// IsAtMostAsGoodAs implements EvaluationField.
func (f *UnknownFieldMV15) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// IsEqualTo implements EvaluationField. Two mv_1.5 markers are mutually
// equal regardless of the attribute they originate from.
func (f *UnknownFieldMV15) IsEqualTo(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// ReverseIsAtLeastAsGoodAs implements SimpleField: no known field is
// explicitly as good as an unknown value.
func (f *UnknownFieldMV15) ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryFalse
}

// ReverseIsAtMostAsGoodAs implements SimpleField.
func (f *UnknownFieldMV15) ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryFalse
}

// ReverseIsEqualTo implements SimpleField.
func (f *UnknownFieldMV15) ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryFalse
}

// CompareToEx implements EvaluationField. The marker ties with any
// simple field.
func (f *UnknownFieldMV15) CompareToEx(other EvaluationField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("compareToEx", KindUnknownMV15, KindNone, ErrNullArgument)
	}
	if !f.comparableWith(other) {
		return 0, NewComparisonError("compareToEx", KindUnknownMV15, other.Kind(), ErrTypeMismatch)
	}
	return 0, nil
}

// ReverseCompareToEx implements SimpleField. There is no defined order
// from a known field back onto an mv_1.5 marker; callers must branch on
// ErrUncomparable explicitly instead of receiving a default ordering.
func (f *UnknownFieldMV15) ReverseCompareToEx(other KnownSimpleField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("reverseCompareToEx", KindUnknownMV15, KindNone, ErrNullArgument)
	}
	return 0, NewComparisonError("reverseCompareToEx", KindUnknownMV15, other.Kind(), ErrUncomparable)
}

// Calculate implements EvaluationField.
func (f *UnknownFieldMV15) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculateUnknownMV15(f, other)
}

// Hash implements EvaluationField; every mv_1.5 marker hashes alike.
func (f *UnknownFieldMV15) Hash() uint64 { return hashMV15 }

// String implements fmt.Stringer.
func (f *UnknownFieldMV15) String() string { return "?" }
