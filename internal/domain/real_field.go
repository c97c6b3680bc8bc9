package domain

import (
	"fmt"
	"hash/fnv"
	"strconv"
)

var _ KnownSimpleField = (*RealField)(nil)

// RealField is a known real-valued evaluation under an attribute's
// preference orientation.
type RealField struct {
	value      float64
	preference PreferenceType
}

// NewRealField creates a real field with the given value and preference
// type.
func NewRealField(value float64, preference PreferenceType) *RealField {
	return &RealField{value: value, preference: preference}
}

// Value returns the field's real value.
func (f *RealField) Value() float64 { return f.value }

// PreferenceType returns the orientation of this field's comparisons.
func (f *RealField) PreferenceType() PreferenceType { return f.preference }

// Kind implements EvaluationField.
func (f *RealField) Kind() FieldKind { return KindReal }

// realSign returns the sign of a-b.
func realSign(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsAtLeastAsGoodAs implements EvaluationField.
func (f *RealField) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *RealField:
		return atLeastForSign(f.preference, realSign(f.value, o.value))
	case *UnknownFieldMV15:
		return o.ReverseIsAtLeastAsGoodAs(f)
	case *UnknownFieldMV2:
		return o.ReverseIsAtLeastAsGoodAs(f)
	default:
		return TernaryUncomparable
	}
}

// IsAtMostAsGoodAs implements EvaluationField.
func (f *RealField) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *RealField:
		return atMostForSign(f.preference, realSign(f.value, o.value))
	case *UnknownFieldMV15:
		return o.ReverseIsAtMostAsGoodAs(f)
	case *UnknownFieldMV2:
		return o.ReverseIsAtMostAsGoodAs(f)
	default:
		return TernaryUncomparable
	}
}

// IsEqualTo implements EvaluationField.
func (f *RealField) IsEqualTo(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *RealField:
		if f.value == o.value {
			return TernaryTrue
		}
		return TernaryFalse
	case *UnknownFieldMV15:
		return o.ReverseIsEqualTo(f)
	case *UnknownFieldMV2:
		return o.ReverseIsEqualTo(f)
	default:
		return TernaryUncomparable
	}
}

// ReverseIsAtLeastAsGoodAs implements SimpleField.
func (f *RealField) ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtLeastAsGoodAs(f)
}

// ReverseIsAtMostAsGoodAs implements SimpleField.
func (f *RealField) ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtMostAsGoodAs(f)
}

// ReverseIsEqualTo implements SimpleField.
func (f *RealField) ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsEqualTo(f)
}

// CompareToEx implements EvaluationField.
func (f *RealField) CompareToEx(other EvaluationField) (int, error) {
	switch o := other.(type) {
	case nil:
		return 0, NewComparisonError("compareToEx", KindReal, KindNone, ErrNullArgument)
	case *RealField:
		return realSign(f.value, o.value), nil
	case *UnknownFieldMV15:
		return o.ReverseCompareToEx(f)
	case *UnknownFieldMV2:
		return o.ReverseCompareToEx(f)
	default:
		return 0, NewComparisonError("compareToEx", KindReal, o.Kind(), ErrTypeMismatch)
	}
}

// ReverseCompareToEx implements SimpleField.
func (f *RealField) ReverseCompareToEx(other KnownSimpleField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("reverseCompareToEx", KindReal, KindNone, ErrNullArgument)
	}
	return other.CompareToEx(f)
}

// Calculate implements EvaluationField.
func (f *RealField) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculateReal(f, other)
}

// Hash implements EvaluationField.
func (f *RealField) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "real:%g", f.value)
	return h.Sum64()
}

// String implements fmt.Stringer.
func (f *RealField) String() string { return strconv.FormatFloat(f.value, 'g', -1, 64) }

func (f *RealField) knownSimpleField() {}
