package domain

import "sort"

// IndexSet is a set of object indices with O(1) amortized membership
// tests. Iteration order is unspecified; Members returns a sorted copy
// for stable output.
type IndexSet struct {
	members map[int]struct{}
}

// NewIndexSet creates an empty index set sized for the given capacity
// hint.
func NewIndexSet(capacity int) *IndexSet {
	if capacity < 0 {
		capacity = 0
	}
	return &IndexSet{members: make(map[int]struct{}, capacity)}
}

// NewIndexSetOf creates an index set holding the given indices.
func NewIndexSetOf(indices ...int) *IndexSet {
	s := NewIndexSet(len(indices))
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add inserts an index into the set.
func (s *IndexSet) Add(i int) { s.members[i] = struct{}{} }

// Contains reports whether the index belongs to the set.
func (s *IndexSet) Contains(i int) bool {
	_, ok := s.members[i]
	return ok
}

// Len returns the number of indices in the set.
func (s *IndexSet) Len() int { return len(s.members) }

// Members returns the indices in ascending order.
func (s *IndexSet) Members() []int {
	out := make([]int, 0, len(s.members))
	for i := range s.members {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Each calls fn for every index in the set, stopping early when fn
// returns false.
func (s *IndexSet) Each(fn func(i int) bool) {
	for i := range s.members {
		if !fn(i) {
			return
		}
	}
}

// IsSubsetOf reports whether every index of s belongs to other.
func (s *IndexSet) IsSubsetOf(other *IndexSet) bool {
	if other == nil {
		return s.Len() == 0
	}
	for i := range s.members {
		if !other.Contains(i) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one index.
func (s *IndexSet) Intersects(other *IndexSet) bool {
	if other == nil {
		return false
	}
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for i := range small.members {
		if large.Contains(i) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold exactly the same indices.
func (s *IndexSet) Equal(other *IndexSet) bool {
	if other == nil || s.Len() != other.Len() {
		return false
	}
	return s.IsSubsetOf(other)
}
