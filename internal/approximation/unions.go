// Package approximation derives dominance-based rough approximations of
// class unions from the cones of an information table. It is the
// in-process consumer of the cone engine that rule-induction logic
// builds on; the rule search itself lives outside this module.
package approximation

import (
	"fmt"

	"github.com/ahrav/go-drsa/internal/domain"
	"github.com/ahrav/go-drsa/internal/ports"
)

// Unions approximates upward ("class at least t") and downward ("class
// at most t") unions of ordered decision classes. Decision class labels
// are integers ordered by preference: a larger label is a better class.
type Unions struct {
	cones     ports.ConeProvider
	decisions []int
}

// NewUnions creates a union approximator over the given cone provider
// and per-object decision class labels. The labels slice must assign a
// class to every object the provider knows about.
func NewUnions(cones ports.ConeProvider, decisions []int) (*Unions, error) {
	if cones == nil || decisions == nil {
		return nil, domain.ErrNullArgument
	}
	if len(decisions) != cones.NumberOfObjects() {
		return nil, fmt.Errorf("decision labels for %d objects, provider has %d: %w",
			len(decisions), cones.NumberOfObjects(), domain.ErrInvalidValue)
	}
	return &Unions{
		cones:     cones,
		decisions: append([]int(nil), decisions...),
	}, nil
}

// UpwardUnion returns the objects whose class is at least t.
func (u *Unions) UpwardUnion(t int) *domain.IndexSet {
	union := domain.NewIndexSet(len(u.decisions))
	for x, class := range u.decisions {
		if class >= t {
			union.Add(x)
		}
	}
	return union
}

// DownwardUnion returns the objects whose class is at most t.
func (u *Unions) DownwardUnion(t int) *domain.IndexSet {
	union := domain.NewIndexSet(len(u.decisions))
	for x, class := range u.decisions {
		if class <= t {
			union.Add(x)
		}
	}
	return union
}

// LowerUpward returns the lower approximation of the upward union at
// threshold t: the objects certainly belonging to class at least t,
// i.e. those whose positive inverse cone fits inside the union. The
// inverse cone is the right one under incomplete data: an object with
// an unknown evaluation never certifies membership through the unknown.
func (u *Unions) LowerUpward(t int) (*domain.IndexSet, error) {
	union := u.UpwardUnion(t)
	lower := domain.NewIndexSet(union.Len())
	for x := range u.decisions {
		cone, err := u.cones.PositiveInvDCone(x)
		if err != nil {
			return nil, err
		}
		if cone.IsSubsetOf(union) {
			lower.Add(x)
		}
	}
	return lower, nil
}

// LowerDownward returns the lower approximation of the downward union
// at threshold t, built from negative straight cones.
func (u *Unions) LowerDownward(t int) (*domain.IndexSet, error) {
	union := u.DownwardUnion(t)
	lower := domain.NewIndexSet(union.Len())
	for x := range u.decisions {
		cone, err := u.cones.NegativeDCone(x)
		if err != nil {
			return nil, err
		}
		if cone.IsSubsetOf(union) {
			lower.Add(x)
		}
	}
	return lower, nil
}

// UpperUpward returns the upper approximation of the upward union at
// threshold t via complement duality: everything outside the lower
// approximation of the complementary downward union at t-1.
func (u *Unions) UpperUpward(t int) (*domain.IndexSet, error) {
	lowerComplement, err := u.LowerDownward(t - 1)
	if err != nil {
		return nil, err
	}
	return u.complement(lowerComplement), nil
}

// UpperDownward returns the upper approximation of the downward union at
// threshold t, dual to the lower approximation of the upward union at
// t+1.
func (u *Unions) UpperDownward(t int) (*domain.IndexSet, error) {
	lowerComplement, err := u.LowerUpward(t + 1)
	if err != nil {
		return nil, err
	}
	return u.complement(lowerComplement), nil
}

// BoundaryUpward returns the doubtful region of the upward union at
// threshold t: upper approximation minus lower approximation.
func (u *Unions) BoundaryUpward(t int) (*domain.IndexSet, error) {
	lower, err := u.LowerUpward(t)
	if err != nil {
		return nil, err
	}
	upper, err := u.UpperUpward(t)
	if err != nil {
		return nil, err
	}
	return difference(upper, lower), nil
}

// BoundaryDownward returns the doubtful region of the downward union at
// threshold t.
func (u *Unions) BoundaryDownward(t int) (*domain.IndexSet, error) {
	lower, err := u.LowerDownward(t)
	if err != nil {
		return nil, err
	}
	upper, err := u.UpperDownward(t)
	if err != nil {
		return nil, err
	}
	return difference(upper, lower), nil
}

// QualityOfApproximation returns the ratio of objects consistently
// classified at threshold t: objects outside both boundaries, over all
// objects. It is the classical gamma measure for the pair of unions at t.
func (u *Unions) QualityOfApproximation(t int) (float64, error) {
	n := len(u.decisions)
	if n == 0 {
		return 0, nil
	}
	upBoundary, err := u.BoundaryUpward(t)
	if err != nil {
		return 0, err
	}
	downBoundary, err := u.BoundaryDownward(t - 1)
	if err != nil {
		return 0, err
	}
	consistent := 0
	for x := 0; x < n; x++ {
		if !upBoundary.Contains(x) && !downBoundary.Contains(x) {
			consistent++
		}
	}
	return float64(consistent) / float64(n), nil
}

func (u *Unions) complement(s *domain.IndexSet) *domain.IndexSet {
	out := domain.NewIndexSet(len(u.decisions) - s.Len())
	for x := range u.decisions {
		if !s.Contains(x) {
			out.Add(x)
		}
	}
	return out
}

func difference(a, b *domain.IndexSet) *domain.IndexSet {
	out := domain.NewIndexSet(a.Len())
	a.Each(func(i int) bool {
		if !b.Contains(i) {
			out.Add(i)
		}
		return true
	})
	return out
}
