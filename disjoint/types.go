// SPDX-License-Identifier: MIT

package disjoint

import "errors"

// Sentinel errors returned by DisjointSet operations.
var (
	// ErrDuplicateItem indicates MakeSet was called for an item already tracked.
	ErrDuplicateItem = errors.New("disjoint: item already tracked")

	// ErrUnknownItem indicates FindSet or Union referenced an item never inserted.
	ErrUnknownItem = errors.New("disjoint: item not tracked")

	// ErrAlreadyUnioned indicates Union was called on two items of the same group.
	ErrAlreadyUnioned = errors.New("disjoint: items already in the same set")
)

// defaultCapacity is the initial slot capacity when no option overrides it.
const defaultCapacity = 10

// Options configures a DisjointSet before creation.
type Options struct {
	// Capacity pre-sizes the slot storage. Must be ≥ 0.
	Capacity int
}

// Option configures Options.
type Option func(*Options)

// WithCapacity pre-sizes the slot storage for n items. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns Options with Capacity = 10.
func DefaultOptions() Options {
	return Options{Capacity: defaultCapacity}
}

// slot is the per-item record: either a root (root == true, rank valid) or a
// child (root == false, parent valid).
type slot struct {
	root   bool
	rank   int
	parent int
}

// rootSlot returns a fresh singleton root of rank 0.
func rootSlot() slot { return slot{root: true} }

// childOf returns a slot linked to parent.
func childOf(parent int) slot { return slot{parent: parent} }
