package domain

import "fmt"

// InformationTable is an ordered sequence of objects, each described by
// evaluation fields aligned to a fixed sequence of attributes. Objects
// are addressed by a dense zero-based index that stays stable for the
// table's lifetime. The table is immutable after construction; engines
// built over it may cache derived structures for as long as they hold a
// reference to the same instance.
type InformationTable struct {
	attributes []EvaluationAttribute
	rows       [][]EvaluationField
	active     []int
}

// NewInformationTable creates a table from attribute descriptors and
// object rows. Every row must hold exactly one non-nil field per
// attribute.
func NewInformationTable(attributes []EvaluationAttribute, rows [][]EvaluationField) (*InformationTable, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("table requires at least one attribute: %w", ErrNullArgument)
	}

	for i, row := range rows {
		if len(row) != len(attributes) {
			return nil, fmt.Errorf("object %d has %d fields, expected %d: %w",
				i, len(row), len(attributes), ErrInvalidValue)
		}
		for j, field := range row {
			if field == nil {
				return nil, fmt.Errorf("object %d, attribute %q: %w", i, attributes[j].Name, ErrNullArgument)
			}
		}
	}

	var active []int
	for i, attr := range attributes {
		if attr.Active {
			active = append(active, i)
		}
	}

	copied := make([][]EvaluationField, len(rows))
	for i, row := range rows {
		copied[i] = append([]EvaluationField(nil), row...)
	}

	return &InformationTable{
		attributes: append([]EvaluationAttribute(nil), attributes...),
		rows:       copied,
		active:     active,
	}, nil
}

// NumberOfObjects returns the number of rows.
func (t *InformationTable) NumberOfObjects() int { return len(t.rows) }

// NumberOfAttributes returns the number of columns.
func (t *InformationTable) NumberOfAttributes() int { return len(t.attributes) }

// Attribute returns the descriptor of the attribute at the given index.
func (t *InformationTable) Attribute(index int) (EvaluationAttribute, error) {
	if index < 0 || index >= len(t.attributes) {
		return EvaluationAttribute{}, &IndexError{Kind: "attribute", Index: index, Size: len(t.attributes)}
	}
	return t.attributes[index], nil
}

// ActiveAttributeIndices returns the indices of active condition
// attributes, in column order. The returned slice is a copy.
func (t *InformationTable) ActiveAttributeIndices() []int {
	return append([]int(nil), t.active...)
}

// Field returns the evaluation at the given object and attribute index.
func (t *InformationTable) Field(objectIndex, attributeIndex int) (EvaluationField, error) {
	if objectIndex < 0 || objectIndex >= len(t.rows) {
		return nil, &IndexError{Kind: "object", Index: objectIndex, Size: len(t.rows)}
	}
	if attributeIndex < 0 || attributeIndex >= len(t.attributes) {
		return nil, &IndexError{Kind: "attribute", Index: attributeIndex, Size: len(t.attributes)}
	}
	return t.rows[objectIndex][attributeIndex], nil
}

// FieldAt is the hot-path accessor used by the dominance engine after it
// has validated indices once per computation. Unlike Field it performs no
// bounds reporting of its own; out-of-range indices panic.
func (t *InformationTable) FieldAt(objectIndex, attributeIndex int) EvaluationField {
	return t.rows[objectIndex][attributeIndex]
}

// Row returns a copy of the object's fields in attribute order.
func (t *InformationTable) Row(objectIndex int) ([]EvaluationField, error) {
	if objectIndex < 0 || objectIndex >= len(t.rows) {
		return nil, &IndexError{Kind: "object", Index: objectIndex, Size: len(t.rows)}
	}
	return append([]EvaluationField(nil), t.rows[objectIndex]...), nil
}
