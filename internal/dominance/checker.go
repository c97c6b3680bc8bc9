// Package dominance implements the dominance relation over an
// information table and the per-object dominance cones derived from it.
package dominance

import (
	"sync/atomic"

	"github.com/ahrav/go-drsa/internal/domain"
)

// checker evaluates the two dominance predicates over the active
// condition attributes of a table. It counts predicate evaluations so
// engines can expose cache behavior to tests and metrics. The counter is
// atomic because parallel precomputation runs predicates from several
// goroutines.
type checker struct {
	table  *domain.InformationTable
	active []int
	evals  atomic.Uint64
}

func newChecker(table *domain.InformationTable) *checker {
	return &checker{
		table:  table,
		active: table.ActiveAttributeIndices(),
	}
}

// dominates reports whether object y dominates object x: for every
// active condition attribute q, q(y) is at least as good as q(x). With
// the mv_1.5 policy this includes the case q(y) unknown, but not the
// case where only q(x) is unknown.
func (c *checker) dominates(y, x int) bool {
	c.evals.Add(1)
	for _, q := range c.active {
		if c.table.FieldAt(y, q).IsAtLeastAsGoodAs(c.table.FieldAt(x, q)) != domain.TernaryTrue {
			return false
		}
	}
	return true
}

// isDominatedBy reports whether object y is dominated by object x: for
// every active condition attribute q, q(y) is at most as good as q(x).
// This is the inverse relation; under incomplete data it is not the
// mirror image of dominates, which is why both predicates exist.
func (c *checker) isDominatedBy(y, x int) bool {
	c.evals.Add(1)
	for _, q := range c.active {
		if c.table.FieldAt(y, q).IsAtMostAsGoodAs(c.table.FieldAt(x, q)) != domain.TernaryTrue {
			return false
		}
	}
	return true
}

// Dominates is the standalone predicate: it reports whether object y
// dominates object x on the table's active condition attributes.
func Dominates(table *domain.InformationTable, y, x int) (bool, error) {
	if table == nil {
		return false, domain.ErrNullArgument
	}
	if err := validateObjectIndex(table, y); err != nil {
		return false, err
	}
	if err := validateObjectIndex(table, x); err != nil {
		return false, err
	}
	return newChecker(table).dominates(y, x), nil
}

// IsDominatedBy is the standalone inverse predicate: it reports whether
// object y is dominated by object x on the active condition attributes.
func IsDominatedBy(table *domain.InformationTable, y, x int) (bool, error) {
	if table == nil {
		return false, domain.ErrNullArgument
	}
	if err := validateObjectIndex(table, y); err != nil {
		return false, err
	}
	if err := validateObjectIndex(table, x); err != nil {
		return false, err
	}
	return newChecker(table).isDominatedBy(y, x), nil
}

func validateObjectIndex(table *domain.InformationTable, i int) error {
	if i < 0 || i >= table.NumberOfObjects() {
		return &domain.IndexError{Kind: "object", Index: i, Size: table.NumberOfObjects()}
	}
	return nil
}
