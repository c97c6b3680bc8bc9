// Package calculators provides aggregation dispatch implementations over
// evaluation fields. Each calculator is the second hop of the double
// dispatch started by a field's Calculate method: the field selects the
// method matching its own variant, the calculator inspects the second
// operand.
package calculators

import (
	"github.com/ahrav/go-drsa/internal/domain"
)

// Compile-time verification that MeanCalculator implements FieldCalculator.
var _ domain.FieldCalculator = (*MeanCalculator)(nil)

// MeanCalculator computes the central tendency (arithmetic mean) of two
// evaluation fields. The returned field carries the first operand's
// preference type; integer and enumeration means use truncating
// division. Missing data propagates: any pairing involving an unknown
// field yields the unknown field instead of an imputed value.
type MeanCalculator struct{}

// NewMeanCalculator creates a mean calculator. The calculator is
// stateless and safe for concurrent use.
func NewMeanCalculator() *MeanCalculator { return &MeanCalculator{} }

// isUnknown reports whether a field is a missing-value marker of either
// variant.
func isUnknown(f domain.EvaluationField) bool {
	switch f.(type) {
	case *domain.UnknownFieldMV15, *domain.UnknownFieldMV2:
		return true
	default:
		return false
	}
}

// CalculateInteger implements domain.FieldCalculator for a known-integer
// first operand. Equal operands return the first field unchanged,
// avoiding rounding and reallocation.
func (c *MeanCalculator) CalculateInteger(first *domain.IntegerField, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindInteger, domain.KindNone, domain.ErrNullArgument)
	}
	if isUnknown(second) {
		return second, nil
	}
	if first.IsEqualTo(second) == domain.TernaryTrue {
		return first, nil
	}
	o, ok := second.(*domain.IntegerField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindInteger, second.Kind(), domain.ErrTypeMismatch)
	}
	return domain.NewIntegerField((first.Value()+o.Value())/2, first.PreferenceType()), nil
}

// CalculateReal implements domain.FieldCalculator for a known-real first
// operand.
func (c *MeanCalculator) CalculateReal(first *domain.RealField, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindReal, domain.KindNone, domain.ErrNullArgument)
	}
	if isUnknown(second) {
		return second, nil
	}
	if first.IsEqualTo(second) == domain.TernaryTrue {
		return first, nil
	}
	o, ok := second.(*domain.RealField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindReal, second.Kind(), domain.ErrTypeMismatch)
	}
	return domain.NewRealField((first.Value()+o.Value())/2, first.PreferenceType()), nil
}

// CalculateEnumeration implements domain.FieldCalculator for a
// known-enumeration first operand. Operands over different element lists
// have no shared ordinal scale and fail with ErrInvalidValue even when
// their ordinal values coincide.
func (c *MeanCalculator) CalculateEnumeration(first *domain.EnumerationField, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindEnumeration, domain.KindNone, domain.ErrNullArgument)
	}
	if isUnknown(second) {
		return second, nil
	}
	o, ok := second.(*domain.EnumerationField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindEnumeration, second.Kind(), domain.ErrTypeMismatch)
	}
	if first.HasEqualHashOfElementList(o) != domain.TernaryTrue {
		return nil, domain.NewCalculationError(domain.KindEnumeration, domain.KindEnumeration, domain.ErrInvalidValue)
	}
	if first.IsEqualTo(o) == domain.TernaryTrue {
		return first, nil
	}
	return domain.NewEnumerationField(first.ElementList(), (first.Value()+o.Value())/2, first.PreferenceType())
}

// CalculatePair implements domain.FieldCalculator for a pair first
// operand with the default componentwise-mean policy: the mean of two
// pairs is the pair of component means. Alternative pair aggregation
// semantics implement domain.FieldCalculator with a different method.
func (c *MeanCalculator) CalculatePair(first *domain.PairField, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindPair, domain.KindNone, domain.ErrNullArgument)
	}
	if isUnknown(second) {
		return second, nil
	}
	o, ok := second.(*domain.PairField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindPair, second.Kind(), domain.ErrTypeMismatch)
	}

	firstMean, err := first.First().Calculate(c, o.First())
	if err != nil {
		return nil, err
	}
	secondMean, err := first.Second().Calculate(c, o.Second())
	if err != nil {
		return nil, err
	}

	firstSimple, ok := firstMean.(domain.SimpleField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindPair, firstMean.Kind(), domain.ErrTypeMismatch)
	}
	secondSimple, ok := secondMean.(domain.SimpleField)
	if !ok {
		return nil, domain.NewCalculationError(domain.KindPair, secondMean.Kind(), domain.ErrTypeMismatch)
	}
	return domain.NewPairField(firstSimple, secondSimple)
}

// CalculateUnknownMV15 implements domain.FieldCalculator: with an
// unknown receiver the mean is the unknown field itself, whatever the
// second operand is.
func (c *MeanCalculator) CalculateUnknownMV15(first *domain.UnknownFieldMV15, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindUnknownMV15, domain.KindNone, domain.ErrNullArgument)
	}
	return first, nil
}

// CalculateUnknownMV2 implements domain.FieldCalculator.
func (c *MeanCalculator) CalculateUnknownMV2(first *domain.UnknownFieldMV2, second domain.EvaluationField) (domain.EvaluationField, error) {
	if first == nil || second == nil {
		return nil, domain.NewCalculationError(domain.KindUnknownMV2, domain.KindNone, domain.ErrNullArgument)
	}
	return first, nil
}
