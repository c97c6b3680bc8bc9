package domain

import (
	"fmt"
	"hash/fnv"
)

var _ EvaluationField = (*PairField)(nil)

// PairField is a composite of two simple fields, typically interval
// bounds. Comparisons are componentwise: the pair relation holds only
// when it holds for both components, and the pair is uncomparable as
// soon as either component comparison is.
type PairField struct {
	first  SimpleField
	second SimpleField
}

// NewPairField creates a pair field from its two components.
func NewPairField(first, second SimpleField) (*PairField, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("pair components are required: %w", ErrNullArgument)
	}
	return &PairField{first: first, second: second}, nil
}

// First returns the first component.
func (f *PairField) First() SimpleField { return f.first }

// Second returns the second component.
func (f *PairField) Second() SimpleField { return f.second }

// Kind implements EvaluationField.
func (f *PairField) Kind() FieldKind { return KindPair }

// combineComponents folds two component results into the pair result.
func combineComponents(a, b TernaryLogicValue) TernaryLogicValue {
	if a == TernaryUncomparable || b == TernaryUncomparable {
		return TernaryUncomparable
	}
	if a == TernaryTrue && b == TernaryTrue {
		return TernaryTrue
	}
	return TernaryFalse
}

// IsAtLeastAsGoodAs implements EvaluationField.
func (f *PairField) IsAtLeastAsGoodAs(other EvaluationField) TernaryLogicValue {
	o, ok := other.(*PairField)
	if !ok {
		return TernaryUncomparable
	}
	return combineComponents(
		f.first.IsAtLeastAsGoodAs(o.first),
		f.second.IsAtLeastAsGoodAs(o.second),
	)
}

// IsAtMostAsGoodAs implements EvaluationField.
func (f *PairField) IsAtMostAsGoodAs(other EvaluationField) TernaryLogicValue {
	o, ok := other.(*PairField)
	if !ok {
		return TernaryUncomparable
	}
	return combineComponents(
		f.first.IsAtMostAsGoodAs(o.first),
		f.second.IsAtMostAsGoodAs(o.second),
	)
}

// IsEqualTo implements EvaluationField.
func (f *PairField) IsEqualTo(other EvaluationField) TernaryLogicValue {
	o, ok := other.(*PairField)
	if !ok {
		return TernaryUncomparable
	}
	return combineComponents(
		f.first.IsEqualTo(o.first),
		f.second.IsEqualTo(o.second),
	)
}

// CompareToEx implements EvaluationField with lexicographic component
// order: the second component decides only when the first one ties.
func (f *PairField) CompareToEx(other EvaluationField) (int, error) {
	switch o := other.(type) {
	case nil:
		return 0, NewComparisonError("compareToEx", KindPair, KindNone, ErrNullArgument)
	case *PairField:
		cmp, err := f.first.CompareToEx(o.first)
		if err != nil {
			return 0, err
		}
		if cmp != 0 {
			return cmp, nil
		}
		return f.second.CompareToEx(o.second)
	default:
		return 0, NewComparisonError("compareToEx", KindPair, o.Kind(), ErrTypeMismatch)
	}
}

// Calculate implements EvaluationField.
func (f *PairField) Calculate(calculator FieldCalculator, other EvaluationField) (EvaluationField, error) {
	if err := checkCalculateArgs(f, calculator, other); err != nil {
		return nil, err
	}
	return calculator.CalculatePair(f, other)
}

// Hash implements EvaluationField.
func (f *PairField) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "pair:%d:%d", f.first.Hash(), f.second.Hash())
	return h.Sum64()
}

// String implements fmt.Stringer.
func (f *PairField) String() string {
	return fmt.Sprintf("(%s, %s)", f.first, f.second)
}
