package domain

import (
	"fmt"
	"hash/fnv"
)

var _ KnownSimpleField = (*EnumerationField)(nil)

// EnumerationField is a known ordinal evaluation: a position on a shared
// element list, ordered under the attribute's preference orientation.
// Comparisons between enumeration fields are defined only when both
// fields were built over structurally identical element lists.
type EnumerationField struct {
	list       *ElementList
	value      int
	preference PreferenceType
}

// NewEnumerationField creates an enumeration field at the given ordinal
// position of the element list.
func NewEnumerationField(list *ElementList, value int, preference PreferenceType) (*EnumerationField, error) {
	if list == nil {
		return nil, fmt.Errorf("element list is required: %w", ErrNullArgument)
	}
	if value < 0 || value >= list.Size() {
		return nil, &IndexError{Kind: "element", Index: value, Size: list.Size()}
	}
	return &EnumerationField{list: list, value: value, preference: preference}, nil
}

// Value returns the field's ordinal position.
func (f *EnumerationField) Value() int { return f.value }

// ElementList returns the scale this field was built over.
func (f *EnumerationField) ElementList() *ElementList { return f.list }

// PreferenceType returns the orientation of this field's comparisons.
func (f *EnumerationField) PreferenceType() PreferenceType { return f.preference }

// Kind implements EvaluationField.
func (f *EnumerationField) Kind() FieldKind { return KindEnumeration }

// HasEqualHashOfElementList reports whether the two fields share a
// structurally identical scale.
func (f *EnumerationField) HasEqualHashOfElementList(other *EnumerationField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	if f.list.HasEqualHash(other.list) {
		return TernaryTrue
	}
	return TernaryFalse
}

// IsAtLeastAsGoodAs implements EvaluationField. Fields over different
// element lists are UNCOMPARABLE; callers must treat that as a
// data-modeling error.
func (f *EnumerationField) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *EnumerationField:
		if !f.list.HasEqualHash(o.list) {
			return TernaryUncomparable
		}
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
func (f *EnumerationField) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *EnumerationField:
		if !f.list.HasEqualHash(o.list) {
			return TernaryUncomparable
		}
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
func (f *EnumerationField) IsEqualTo(other EvaluationField) TernaryLogicValue {
	switch o := other.(type) {
	case *EnumerationField:
		if !f.list.HasEqualHash(o.list) {
			return TernaryUncomparable
		}
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
func (f *EnumerationField) ReverseIsAtLeastAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtLeastAsGoodAs(f)
}

// ReverseIsAtMostAsGoodAs implements SimpleField.
func (f *EnumerationField) ReverseIsAtMostAsGoodAs(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsAtMostAsGoodAs(f)
}

// ReverseIsEqualTo implements SimpleField.
func (f *EnumerationField) ReverseIsEqualTo(other KnownSimpleField) TernaryLogicValue {
	if other == nil {
		return TernaryUncomparable
	}
	return other.IsEqualTo(f)
}

// CompareToEx implements EvaluationField. Mismatched element lists fail
// with ErrInvalidValue since no shared ordinal scale exists.
func (f *EnumerationField) CompareToEx(other EvaluationField) (int, error) {
	switch o := other.(type) {
	case nil:
		return 0, NewComparisonError("compareToEx", KindEnumeration, KindNone, ErrNullArgument)
	case *EnumerationField:
		if !f.list.HasEqualHash(o.list) {
			return 0, NewComparisonError("compareToEx", KindEnumeration, KindEnumeration, ErrInvalidValue)
		}
		return intSign(f.value, o.value), nil
	case *UnknownFieldMV15:
		return o.ReverseCompareToEx(f)
	case *UnknownFieldMV2:
		return o.ReverseCompareToEx(f)
	default:
		return 0, NewComparisonError("compareToEx", KindEnumeration, o.Kind(), ErrTypeMismatch)
	}
}

// ReverseCompareToEx implements SimpleField.
func (f *EnumerationField) ReverseCompareToEx(other KnownSimpleField) (int, error) {
	if other == nil {
		return 0, NewComparisonError("reverseCompareToEx", KindEnumeration, KindNone, ErrNullArgument)
	}
	return other.CompareToEx(f)
}

// Calculate implements EvaluationField.
func (f *EnumerationField) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculateEnumeration(f, other)
}

// Hash implements EvaluationField. The scale hash participates so equal
// ordinals on different scales do not collide.
func (f *EnumerationField) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "enumeration:%d:%d", f.list.Hash(), f.value)
	return h.Sum64()
}

// String implements fmt.Stringer.
func (f *EnumerationField) String() string {
	label, err := f.list.Element(f.value)
	if err != nil {
		return fmt.Sprintf("enumeration(%d)", f.value)
	}
	return label
}

func (f *EnumerationField) knownSimpleField() {}
