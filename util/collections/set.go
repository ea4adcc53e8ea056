package collections

import "sort"

type Set[V comparable] map[V]struct{}

// NewSet returns a set holding the given values
func NewSet[V comparable](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Remove an element from the set (or no-op if element not present)
func (set Set[V]) Remove(value V) {
	delete(set, value)
}

// Contains returns whether the element exists within the set
func (set Set[V]) Contains(value V) bool {
	_, contains := set[value]
	return contains
}

// Difference returns a new Set containing all elements from the calling set
// not present in the other set
func (set Set[V]) Difference(other Set[V]) Set[V] {
	difference := make(Set[V])
	for value := range set {
		if !other.Contains(value) {
			difference.Add(value)
		}
	}
	return difference
}

// Intersection returns a new Set containing all elements present in both sets
func (set Set[V]) Intersection(other Set[V]) Set[V] {
	intersection := make(Set[V])
	for value := range set {
		if other.Contains(value) {
			intersection.Add(value)
		}
	}
	return intersection
}

// IntersectionEx returns a new Set containing all elements present in both sets,
// and a boolean indicating whether the calling set is a non-strict subset of
// the other set
func (set Set[V]) IntersectionEx(other Set[V]) (Set[V], bool) {
	isSubset := true
	intersection := make(Set[V])
	for value := range set {
		if other.Contains(value) {
			intersection.Add(value)
		} else {
			isSubset = false
		}
	}
	return intersection, isSubset
}

// Sorted returns the elements ordered by less
func (set Set[V]) Sorted(less func(a, b V) bool) []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		return less(values[i], values[j])
	})
	return values
}
