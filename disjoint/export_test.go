// SPDX-License-Identifier: MIT

package disjoint

// RankOf exposes the rank stored at slot id to disjoint_test; -1 for child slots.
func (d *DisjointSet[T]) RankOf(id int) int {
	if !d.slots[id].root {
		return -1
	}
	return d.slots[id].rank
}

// ParentOf exposes the parent link of slot id; the id itself for root slots.
func (d *DisjointSet[T]) ParentOf(id int) int {
	if d.slots[id].root {
		return id
	}
	return d.slots[id].parent
}
