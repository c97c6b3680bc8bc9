package drsa

import (
	"context"
	"fmt"

	"github.com/ahrav/go-drsa/infrastructure/calculators"
	"github.com/ahrav/go-drsa/internal/approximation"
	"github.com/ahrav/go-drsa/internal/dominance"
	"github.com/ahrav/go-drsa/internal/domain"
	"github.com/ahrav/go-drsa/internal/ports"
)

// Analysis binds an information table to its dominance cone engine and
// the structures derived from it. One Analysis owns one engine bound to
// one immutable table; discard the Analysis to invalidate its caches.
type Analysis struct {
	table     *domain.InformationTable
	engine    *dominance.ConeEngine
	decisions []int
}

// New creates an analysis over an already-constructed table. Decision
// labels may be nil when union approximations are not needed.
func New(table *domain.InformationTable, decisions []int) (*Analysis, error) {
	if table == nil {
		return nil, domain.ErrNullArgument
	}
	if decisions != nil && len(decisions) != table.NumberOfObjects() {
		return nil, fmt.Errorf("%d decision labels for %d objects: %w",
			len(decisions), table.NumberOfObjects(), domain.ErrInvalidValue)
	}

	engine, err := dominance.NewConeEngine(table)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		table:     table,
		engine:    engine,
		decisions: decisions,
	}, nil
}

// FromYAML decodes a table configuration, builds the table, and wires
// up the engine in one step.
func FromYAML(data []byte) (*Analysis, error) {
	cfg, err := LoadTableConfig(data)
	if err != nil {
		return nil, err
	}
	table, err := cfg.BuildTable()
	if err != nil {
		return nil, err
	}
	return New(table, cfg.Decisions)
}

// Table returns the analysis's information table.
func (a *Analysis) Table() *domain.InformationTable { return a.table }

// Cones returns the cone provider bound to the table. The provider
// computes cones lazily; use Precompute to fill every slot ahead of
// time.
func (a *Analysis) Cones() ports.ConeProvider { return a.engine }

// Engine returns the concrete cone engine, exposing its predicate
// evaluation counter for instrumentation.
func (a *Analysis) Engine() *dominance.ConeEngine { return a.engine }

// Precompute fills all cone slots, parallelizing across disjoint object
// partitions. See the engine's Precompute for the concurrency contract.
func (a *Analysis) Precompute(ctx context.Context, parallelism int) error {
	return a.engine.Precompute(ctx, parallelism)
}

// Unions returns the rough approximation calculator for upward and
// downward class unions. It requires decision labels.
func (a *Analysis) Unions() (*approximation.Unions, error) {
	if a.decisions == nil {
		return nil, fmt.Errorf("analysis has no decision labels: %w", domain.ErrNullArgument)
	}
	return approximation.NewUnions(a.engine, a.decisions)
}

// ClassRepresentative computes a central-tendency representative for a
// group of objects: per attribute, the running mean of the group's
// fields under the mean calculator's pairing rules. Missing values
// propagate, so a single unknown evaluation makes the representative
// unknown on that attribute.
func (a *Analysis) ClassRepresentative(objectIndices []int) ([]domain.EvaluationField, error) {
	if len(objectIndices) == 0 {
		return nil, fmt.Errorf("no objects to represent: %w", domain.ErrNullArgument)
	}

	calculator := calculators.NewMeanCalculator()
	representative, err := a.table.Row(objectIndices[0])
	if err != nil {
		return nil, err
	}

	for _, objectIndex := range objectIndices[1:] {
		row, err := a.table.Row(objectIndex)
		if err != nil {
			return nil, err
		}
		for q := range representative {
			mean, err := representative[q].Calculate(calculator, row[q])
			if err != nil {
				return nil, err
			}
			representative[q] = mean
		}
	}
	return representative, nil
}
