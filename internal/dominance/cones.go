package dominance

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-drsa/internal/domain"
	"github.com/ahrav/go-drsa/internal/ports"
)

// Compile-time verification that ConeEngine implements ConeProvider.
var _ ports.ConeProvider = (*ConeEngine)(nil)

// conePair is the unit of memoization: the positive and negative cone
// of one relation, originating in one object, always computed together
// so a single pass over the table fills both.
type conePair struct {
	positive *domain.IndexSet
	negative *domain.IndexSet
}

// ConeEngine computes and caches the four dominance cones of every
// object in an information table. One engine is bound to one table
// instance; the table must not be mutated while the engine is alive,
// and cones are invalidated only by discarding the engine.
//
// Cone slots follow a compute-once, write-once discipline: each slot is
// filled at most once and per-object slots are independent, so callers
// may parallelize across disjoint object partitions (Precompute does
// exactly that). The engine defines no arbitration for two writers
// racing on the same slot; lazy accessors themselves are meant for
// single-threaded use or use after Precompute.
type ConeEngine struct {
	table   *domain.InformationTable
	checker *checker

	// straight[x] holds D+(x) and D-(x); inverse[x] holds InvD+(x) and
	// InvD-(x). A nil slot has not been computed yet.
	straight []*conePair
	inverse  []*conePair
}

// NewConeEngine creates a cone engine bound to the given table.
func NewConeEngine(table *domain.InformationTable) (*ConeEngine, error) {
	if table == nil {
		return nil, domain.ErrNullArgument
	}
	n := table.NumberOfObjects()
	return &ConeEngine{
		table:    table,
		checker:  newChecker(table),
		straight: make([]*conePair, n),
		inverse:  make([]*conePair, n),
	}, nil
}

// NumberOfObjects implements ports.ConeProvider.
func (e *ConeEngine) NumberOfObjects() int { return e.table.NumberOfObjects() }

// PredicateEvaluations returns how many dominance predicate evaluations
// the engine has performed so far. Memoization means repeated cone
// requests do not increase this count.
func (e *ConeEngine) PredicateEvaluations() uint64 { return e.checker.evals.Load() }

// PositiveDCone implements ports.ConeProvider: D+(x) = {y : y D x},
// the objects dominating x.
func (e *ConeEngine) PositiveDCone(objectIndex int) (*domain.IndexSet, error) {
	pair, err := e.straightPair(objectIndex)
	if err != nil {
		return nil, err
	}
	return pair.positive, nil
}

// NegativeDCone implements ports.ConeProvider: D-(x) = {y : x D y},
// the objects dominated by x.
func (e *ConeEngine) NegativeDCone(objectIndex int) (*domain.IndexSet, error) {
	pair, err := e.straightPair(objectIndex)
	if err != nil {
		return nil, err
	}
	return pair.negative, nil
}

// PositiveInvDCone implements ports.ConeProvider: InvD+(x) = {y : x InvD y},
// the objects that x is dominated by.
func (e *ConeEngine) PositiveInvDCone(objectIndex int) (*domain.IndexSet, error) {
	pair, err := e.inversePair(objectIndex)
	if err != nil {
		return nil, err
	}
	return pair.positive, nil
}

// NegativeInvDCone implements ports.ConeProvider: InvD-(x) = {y : y InvD x},
// the objects dominated by x under the inverse relation.
func (e *ConeEngine) NegativeInvDCone(objectIndex int) (*domain.IndexSet, error) {
	pair, err := e.inversePair(objectIndex)
	if err != nil {
		return nil, err
	}
	return pair.negative, nil
}

func (e *ConeEngine) straightPair(x int) (*conePair, error) {
	if err := validateObjectIndex(e.table, x); err != nil {
		return nil, err
	}
	if e.straight[x] == nil {
		e.straight[x] = e.computeStraight(x)
	}
	return e.straight[x], nil
}

func (e *ConeEngine) inversePair(x int) (*conePair, error) {
	if err := validateObjectIndex(e.table, x); err != nil {
		return nil, err
	}
	if e.inverse[x] == nil {
		e.inverse[x] = e.computeInverse(x)
	}
	return e.inverse[x], nil
}

// computeStraight fills D+(x) and D-(x) in a single pass over all
// objects: each predicate evaluation decides membership in one of the
// two cones of the pair, so the pair costs 2(n-1) evaluations instead
// of two independent passes of n each.
func (e *ConeEngine) computeStraight(x int) *conePair {
	n := e.table.NumberOfObjects()
	pair := &conePair{
		positive: domain.NewIndexSet(n),
		negative: domain.NewIndexSet(n),
	}

	// Dominance is reflexive under "at least as good as".
	pair.positive.Add(x)
	pair.negative.Add(x)

	for y := 0; y < n; y++ {
		if y == x {
			continue
		}
		if e.checker.dominates(y, x) {
			pair.positive.Add(y)
		}
		if e.checker.dominates(x, y) {
			pair.negative.Add(y)
		}
	}
	return pair
}

// computeInverse fills InvD+(x) and InvD-(x) analogously, using the
// inverse relation built on "at most as good as". Under complete data
// the inverse cones coincide with the straight ones; missing values
// break that symmetry, so they are computed from their own predicate.
func (e *ConeEngine) computeInverse(x int) *conePair {
	n := e.table.NumberOfObjects()
	pair := &conePair{
		positive: domain.NewIndexSet(n),
		negative: domain.NewIndexSet(n),
	}

	pair.positive.Add(x)
	pair.negative.Add(x)

	for y := 0; y < n; y++ {
		if y == x {
			continue
		}
		if e.checker.isDominatedBy(x, y) {
			pair.positive.Add(y)
		}
		if e.checker.isDominatedBy(y, x) {
			pair.negative.Add(y)
		}
	}
	return pair
}

// Precompute fills every cone slot ahead of time, parallelizing across
// disjoint object partitions. Each goroutine writes only the slots of
// its own objects, which keeps the write-once discipline intact. A
// parallelism of zero or less uses GOMAXPROCS.
//
// The context bounds the work: computation stops at the first
// cancellation observed between objects.
func (e *ConeEngine) Precompute(ctx context.Context, parallelism int) error {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for x := 0; x < e.table.NumberOfObjects(); x++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.straight[x] == nil {
				e.straight[x] = e.computeStraight(x)
			}
			if e.inverse[x] == nil {
				e.inverse[x] = e.computeInverse(x)
			}
			return nil
		})
	}
	return g.Wait()
}
