package domain

import (
	"fmt"
	"hash/fnv"
)

// Compile-time verification of the closed interface set.
var _ KnownSimpleField = (*IntegerField)(nil)

// IntegerField is a known integer evaluation under an attribute's
// preference orientation.
type IntegerField struct {
	value      int
	preference PreferenceType
}

// NewIntegerField creates an integer field with the given value and
// preference type.
func NewIntegerField(value int, preference PreferenceType) *IntegerField {
	return &IntegerField{value: value, preference: preference}
}

// Value returns the field's integer value.
func (f *IntegerField) Value() int { return f.value }

// PreferenceType returns the orientation of this field's comparisons.
func (f *IntegerField) PreferenceType() PreferenceType { return f.preference }

// Kind implements EvaluationField.
func (f *IntegerField) Kind() FieldKind { return KindInteger }

// atLeastForSign maps the natural comparison sign between two known
// values onto the "at least as good" relation for a preference type.
func atLeastForSign(preference PreferenceType, sign int) TernaryLogicValue {
	switch preference {
	case PreferenceCost:
		if sign <= 0 {
			return TernaryTrue
		}
	case PreferenceNone:
		if sign == 0 {
			return TernaryTrue
		}
	default: // gain, and unset preference treated as gain
		if sign >= 0 {
			return TernaryTrue
		}
	}
	return TernaryFalse
}

// atMostForSign is the dual of atLeastForSign.
func atMostForSign(preference PreferenceType, sign int) TernaryLogicValue {
	return atLeastForSign(preference, -sign)
}

// intSign returns the sign of a-b.
func intSign(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsAtLeastAsGoodAs implements EvaluationField. Comparisons against a
// missing-value marker are delegated to the marker's reverse operation,
// so each missing-value policy controls both directions itself.
func (f *IntegerField) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *IntegerField:
		return atLeastForSign(f.preference, intSign(f.value, o.value))
	case *UnknownFieldMV15:
		return o.ReverseIsAtLeastAsGoodAs(f)
	case *UnknownFieldMV2:
		return o.ReverseIsAtLeastAsGoodAs(f)
	default:
		return TernaryUncomparable
	}
}

// IsAtMostAsGoodAs implements EvaluationField.
func (f *IntegerField) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *IntegerField:
		return atMostForSign(f.preference, intSign(f.value, o.value))
	case *UnknownFieldMV15:
		return o.ReverseIsAtMostAsGoodAs(f)
	case *UnknownFieldMV2:
		return o.ReverseIsAtMostAsGoodAs(f)
	default:
		return TernaryUncomparable
	}
}

// IsEqualTo implements EvaluationField.
func (f *IntegerField) IsEqualTo(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *IntegerField:
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

// ReverseIsAtLeastAsGoodAs implements SimpleField by running the forward
// comparison from the known argument's side.
func (f *IntegerField) ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtLeastAsGoodAs(f)
}

// ReverseIsAtMostAsGoodAs implements SimpleField.
func (f *IntegerField) ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtMostAsGoodAs(f)
}

// ReverseIsEqualTo implements SimpleField.
func (f *IntegerField) ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsEqualTo(f)
}

// CompareToEx implements EvaluationField. The sign is the natural sign
// of the value difference; preference orientation applies only to the
// ternary operations.
func (f *IntegerField) CompareToEx(other EvaluationField) (int, error) {
	switch o := other.(type) {
	case nil:
		return 0, NewComparisonError("compareToEx", KindInteger, KindNone, ErrNullArgument)
	case *IntegerField:
		return intSign(f.value, o.value), nil
	case *UnknownFieldMV15:
		return o.ReverseCompareToEx(f)
	case *UnknownFieldMV2:
		return o.ReverseCompareToEx(f)
	default:
		return 0, NewComparisonError("compareToEx", KindInteger, o.Kind(), ErrTypeMismatch)
	}
}

// ReverseCompareToEx implements SimpleField.
func (f *IntegerField) ReverseCompareToEx(other KnownSimpleField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("reverseCompareToEx", KindInteger, KindNone, ErrNullArgument)
	}
	return other.CompareToEx(f)
}

// Calculate implements EvaluationField by dispatching to the calculator's
// integer pairing.
func (f *IntegerField) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculateInteger(f, other)
}

// Hash implements EvaluationField.
func (f *IntegerField) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "integer:%d", f.value)
	return h.Sum64()
}

// String implements fmt.Stringer.
func (f *IntegerField) String() string { return fmt.Sprintf("%d", f.value) }

func (f *IntegerField) knownSimpleField() {}
