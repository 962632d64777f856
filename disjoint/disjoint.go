// SPDX-License-Identifier: MIT

package disjoint

import "fmt"

// DisjointSet maintains a partition of items of type T into disjoint groups.
// Construct with New; the zero value is not usable.
type DisjointSet[T comparable] struct {
	slots  []slot    // slot id → root/child record
	ids    map[T]int // item → slot id
	groups int       // number of distinct groups
}

// New creates an empty DisjointSet.
// Complexity: O(Capacity).
func New[T comparable](opts ...Option) *DisjointSet[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DisjointSet[T]{
		slots: make([]slot, 0, cfg.Capacity),
		ids:   make(map[T]int, cfg.Capacity),
	}
}

// MakeSet inserts item as its own singleton group and assigns it the next slot id.
// Returns ErrDuplicateItem if item is already tracked.
// Complexity: O(1) amortized.
func (d *DisjointSet[T]) MakeSet(item T) error {
	if _, ok := d.ids[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	d.ids[item] = len(d.slots)
	d.slots = append(d.slots, rootSlot())
	d.groups++

	return nil
}

// FindSet returns the representative slot id of item's group.
// Every node visited on the way to the root is re-linked directly to the root.
// Returns ErrUnknownItem if item was never inserted.
// Complexity: ≈O(α(n)) amortized.
func (d *DisjointSet[T]) FindSet(item T) (int, error) {
	id, ok := d.ids[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}

	return d.find(id), nil
}

// find resolves the root of slot id and compresses the visited path.
func (d *DisjointSet[T]) find(id int) int {
	// 1) Walk up to the root.
	root := id
	for !d.slots[root].root {
		root = d.slots[root].parent
	}
	// 2) Point every visited node straight at the root.
	for id != root {
		next := d.slots[id].parent
		d.slots[id] = childOf(root)
		id = next
	}

	return root
}

// Union merges the groups of a and b using union by rank.
//
// Error Conditions:
//   - ErrUnknownItem    : a or b was never inserted.
//   - ErrAlreadyUnioned : a and b already share a representative.
//
// On equal ranks the root of b is attached under the root of a, and a's root
// rank is incremented.
// Complexity: ≈O(α(n)) amortized.
func (d *DisjointSet[T]) Union(a, b T) error {
	ra, err := d.FindSet(a)
	if err != nil {
		return err
	}
	rb, err := d.FindSet(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return fmt.Errorf("%w: %v and %v", ErrAlreadyUnioned, a, b)
	}

	rankA, rankB := d.slots[ra].rank, d.slots[rb].rank
	switch {
	case rankA < rankB:
		d.slots[ra] = childOf(rb)
	case rankA > rankB:
		d.slots[rb] = childOf(ra)
	default:
		d.slots[rb] = childOf(ra)
		d.slots[ra].rank++
	}
	d.groups--

	return nil
}

// Connected reports whether a and b belong to the same group.
// Returns ErrUnknownItem if either item was never inserted.
func (d *DisjointSet[T]) Connected(a, b T) (bool, error) {
	ra, err := d.FindSet(a)
	if err != nil {
		return false, err
	}
	rb, err := d.FindSet(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Contains reports whether item has been inserted.
func (d *DisjointSet[T]) Contains(item T) bool {
	_, ok := d.ids[item]
	return ok
}

// Len returns the number of tracked items.
func (d *DisjointSet[T]) Len() int { return len(d.slots) }

// Count returns the number of distinct groups.
func (d *DisjointSet[T]) Count() int { return d.groups }
