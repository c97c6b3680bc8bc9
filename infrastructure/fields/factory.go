// Package fields constructs evaluation fields from their textual
// representation and the attribute they belong to. It is the boundary
// adapter used by table builders; the domain model itself never parses
// text.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ahrav/go-drsa/internal/domain"
)

// MissingValueText is the textual marker for an unknown evaluation.
const MissingValueText = "?"

// ParseError reports a textual value that could not be parsed as a
// field of its attribute. For enumeration attributes it may carry the
// closest known label as a suggestion.
type ParseError struct {
	// Value is the offending textual representation.
	Value string

	// Attribute is the name of the attribute being parsed.
	Attribute string

	// Suggestion is the closest valid label, when one is close enough to
	// be worth suggesting. Empty otherwise.
	Suggestion string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("cannot parse %q as a value of attribute %q (did you mean %q?): %v",
			e.Value, e.Attribute, e.Suggestion, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as a value of attribute %q: %v", e.Value, e.Attribute, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Factory builds evaluation fields from textual values according to an
// attribute's kind, preference type, and missing-value policy. It is
// stateless and safe for concurrent use.
type Factory struct{}

// NewFactory creates a field factory.
func NewFactory() *Factory { return &Factory{} }

// Create constructs the field for one textual cell value of the given
// attribute. The missing-value marker "?" maps to the attribute's
// missing-value variant. Pair fields are composed programmatically from
// their components and have no textual form here.
func (f *Factory) Create(value string, attribute domain.EvaluationAttribute) (domain.EvaluationField, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == MissingValueText {
		return f.createUnknown(attribute), nil
	}

	switch attribute.Kind {
	case domain.KindInteger:
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, &ParseError{Value: value, Attribute: attribute.Name, Err: err}
		}
		return domain.NewIntegerField(v, attribute.Preference), nil

	case domain.KindReal:
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &ParseError{Value: value, Attribute: attribute.Name, Err: err}
		}
		return domain.NewRealField(v, attribute.Preference), nil

	case domain.KindEnumeration:
		return f.createEnumeration(trimmed, attribute)

	default:
		return nil, &ParseError{
			Value:     value,
			Attribute: attribute.Name,
			Err:       fmt.Errorf("attribute kind %q has no textual form: %w", attribute.Kind, domain.ErrTypeMismatch),
		}
	}
}

func (f *Factory) createUnknown(attribute domain.EvaluationAttribute) domain.EvaluationField {
	if attribute.MissingValuePolicy() == domain.MissingMV2 {
		return domain.NewUnknownFieldMV2()
	}
	return domain.NewUnknownFieldMV15()
}

func (f *Factory) createEnumeration(value string, attribute domain.EvaluationAttribute) (domain.EvaluationField, error) {
	if attribute.Elements == nil {
		return nil, &ParseError{
			Value:     value,
			Attribute: attribute.Name,
			Err:       fmt.Errorf("enumeration attribute without element list: %w", domain.ErrInvalidValue),
		}
	}

	idx := attribute.Elements.IndexOf(value)
	if idx < 0 {
		return nil, &ParseError{
			Value:      value,
			Attribute:  attribute.Name,
			Suggestion: closestLabel(value, attribute.Elements.Elements()),
			Err:        fmt.Errorf("label not on the attribute's scale: %w", domain.ErrInvalidValue),
		}
	}
	return domain.NewEnumerationField(attribute.Elements, idx, attribute.Preference)
}

// closestLabel returns the element label with the smallest edit distance
// to the query, or "" when nothing is close enough to be a plausible
// typo. The cutoff grows with the query length so short labels do not
// suggest unrelated words.
func closestLabel(value string, labels []string) string {
	best := ""
	bestDistance := -1
	for _, label := range labels {
		d := levenshtein.ComputeDistance(strings.ToLower(value), strings.ToLower(label))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = label, d
		}
	}

	maxDistance := len(value)/2 + 1
	if bestDistance < 0 || bestDistance > maxDistance {
		return ""
	}
	return best
}
