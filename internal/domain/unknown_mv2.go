package domain

import "hash/fnv"

var _ SimpleField = (*UnknownFieldMV2)(nil)

// hashMV2 is shared by every mv_2 marker.
var hashMV2 = func() uint64 {
	h := fnv.New64a()
	h.Write([]byte("unknown:mv2"))
	return h.Sum64()
}()

// UnknownFieldMV2 is a missing-value marker handled according to the
// mv_2 approach: an unknown value is comparable with every simple field
// in both directions. Unlike mv_1.5, the relation is symmetric - a known
// field is also at least as good as, at most as good as, and equal to an
// unknown value.
type UnknownFieldMV2 struct{}

// NewUnknownFieldMV2 creates an mv_2 missing-value marker.
func NewUnknownFieldMV2() *UnknownFieldMV2 { return &UnknownFieldMV2{} }

// Kind implements EvaluationField.
func (f *UnknownFieldMV2) Kind() FieldKind { return KindUnknownMV2 }

func (f *UnknownFieldMV2) comparableWith(other EvaluationField) bool {
	if other == nil {
		return false
	}
	_, ok := other.(SimpleField)
	return ok
}

// IsAtLeastAsGoodAs implements EvaluationField.
func (f *UnknownFieldMV2) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// IsAtMostAsGoodAs implements EvaluationField.
func (f *UnknownFieldMV2) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// IsEqualTo implements EvaluationField.
func (f *UnknownFieldMV2) IsEqualTo(other EvaluationField) TernaryLogicValue {
	if f.comparableWith(other) {
		return TernaryTrue
	}
	return TernaryUncomparable
}

// ReverseIsAtLeastAsGoodAs implements SimpleField: under mv_2 a known
// field is as good as an unknown value.
func (f *UnknownFieldMV2) ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryTrue
}

// ReverseIsAtMostAsGoodAs implements SimpleField.
func (f *UnknownFieldMV2) ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryTrue
}

// ReverseIsEqualTo implements SimpleField.
func (f *UnknownFieldMV2) ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return TernaryTrue
}

// CompareToEx implements EvaluationField.
func (f *UnknownFieldMV2) CompareToEx(other EvaluationField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("compareToEx", KindUnknownMV2, KindNone, ErrNullArgument)
	}
	if !f.comparableWith(other) {
		return 0, NewComparisonError("compareToEx", KindUnknownMV2, other.Kind(), ErrTypeMismatch)
	}
	return 0, nil
}

// ReverseCompareToEx implements SimpleField. Symmetrically to
// CompareToEx, a known field ties with the mv_2 marker.
func (f *UnknownFieldMV2) ReverseCompareToEx(other KnownSimpleField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("reverseCompareToEx", KindUnknownMV2, KindNone, ErrNullArgument)
	}
	return 0, nil
}

// Calculate implements EvaluationField.
func (f *UnknownFieldMV2) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculateUnknownMV2(f, other)
}

// Hash implements EvaluationField; every mv_2 marker hashes alike.
func (f *UnknownFieldMV2) Hash() uint64 { return hashMV2 }

// String implements fmt.Stringer.
func (f *UnknownFieldMV2) String() string { return "?" }
