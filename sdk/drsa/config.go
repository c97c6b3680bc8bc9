// Package drsa is the public facade of the dominance-based rough set
// core. It assembles information tables from declarative configuration
// and exposes the cone engine, union approximations, and aggregation
// entry points to embedding applications. Reading configuration from
// files or other media is the caller's concern; the facade only decodes
// bytes it is handed.
package drsa

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-drsa/infrastructure/fields"
	"github.com/ahrav/go-drsa/internal/domain"
)

// validate is the shared validator instance for configuration structs.
var validate = validator.New()

// TableConfig is the declarative specification of an information table:
// its attributes, object rows as textual cell values, and optional
// decision class labels.
type TableConfig struct {
	// Name identifies the table in metrics and traces.
	Name string `yaml:"name" validate:"required,min=1,max=255"`

	// Attributes describes the table's columns in order.
	Attributes []AttributeConfig `yaml:"attributes" validate:"required,min=1,dive"`

	// Objects holds one row per object, each with exactly one textual
	// value per attribute. "?" marks a missing value.
	Objects [][]string `yaml:"objects"`

	// Decisions optionally assigns an ordered decision class label to
	// every object; larger labels are better classes. Required for union
	// approximations.
	Decisions []int `yaml:"decisions,omitempty"`
}

// AttributeConfig describes one column of the table.
type AttributeConfig struct {
	// Name is the attribute's identifier, unique within the table.
	Name string `yaml:"name" validate:"required,min=1,max=255"`

	// Kind selects the field variant held by this column.
	Kind string `yaml:"kind" validate:"required,oneof=integer real enumeration"`

	// Preference orients comparisons: gain, cost, or none.
	Preference string `yaml:"preference" validate:"required,oneof=gain cost none"`

	// Active reports whether the attribute participates in dominance
	// checks.
	Active bool `yaml:"active"`

	// MissingValue selects the missing-value policy, mv1.5 or mv2.
	// Defaults to mv1.5.
	MissingValue string `yaml:"missing_value,omitempty" validate:"omitempty,oneof=mv1.5 mv2"`

	// Elements is the ordered label scale of an enumeration attribute.
	Elements []string `yaml:"elements,omitempty"`
}

// LoadTableConfig decodes and validates a YAML table specification.
// Decoding is strict: unknown fields are rejected.
func LoadTableConfig(data []byte) (*TableConfig, error) {
	var cfg TableConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// Strict decoding catches unknown fields.
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode table config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("table config validation failed: %w", err)
	}

	for i, attr := range cfg.Attributes {
		if attr.Kind == "enumeration" && len(attr.Elements) == 0 {
			return nil, fmt.Errorf("attribute %q (index %d) is an enumeration without elements: %w",
				attr.Name, i, domain.ErrInvalidValue)
		}
	}
	if cfg.Decisions != nil && len(cfg.Decisions) != len(cfg.Objects) {
		return nil, fmt.Errorf("%d decision labels for %d objects: %w",
			len(cfg.Decisions), len(cfg.Objects), domain.ErrInvalidValue)
	}
	return &cfg, nil
}

// BuildTable constructs the immutable information table described by
// the configuration, parsing every textual cell through the field
// factory.
func (cfg *TableConfig) BuildTable() (*domain.InformationTable, error) {
	attributes := make([]domain.EvaluationAttribute, len(cfg.Attributes))
	for i, ac := range cfg.Attributes {
		attr := domain.EvaluationAttribute{
			Name:         ac.Name,
			Kind:         domain.FieldKind(ac.Kind),
			Preference:   domain.PreferenceType(ac.Preference),
			Active:       ac.Active,
			MissingValue: domain.MissingValueVariant(ac.MissingValue),
		}
		if ac.Kind == "enumeration" {
			list, err := domain.NewElementList(ac.Elements)
			if err != nil {
				return nil, fmt.Errorf("attribute %q: %w", ac.Name, err)
			}
			attr.Elements = list
		}
		attributes[i] = attr
	}

	factory := fields.NewFactory()
	rows := make([][]domain.EvaluationField, len(cfg.Objects))
	for i, object := range cfg.Objects {
		if len(object) != len(attributes) {
			return nil, fmt.Errorf("object %d has %d values, expected %d: %w",
				i, len(object), len(attributes), domain.ErrInvalidValue)
		}
		row := make([]domain.EvaluationField, len(object))
		for j, value := range object {
			field, err := factory.Create(value, attributes[j])
			if err != nil {
				return nil, fmt.Errorf("object %d: %w", i, err)
			}
			row[j] = field
		}
		rows[i] = row
	}

	return domain.NewInformationTable(attributes, rows)
}
