// File: internal/freelist/construct_mp.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Multi-producer construct policy: lock-free, safe from any number of
// threads concurrently (§4.3).

package freelist

import (
	"sync/atomic"
)

// MPConstruct pops the head cell via a CAS loop. head and the tail in
// MCDestroy are padded to separate cache lines, matching the false
// sharing guard the teacher applies to its own head/tail pairs in
// core/concurrency/ring.go and lock_free_queue.go.
type MPConstruct[T any] struct {
	head atomic.Pointer[Cell[T]]
	_    pad
}

// NewMPConstruct starts the policy at storage's initial head.
func NewMPConstruct[T any](s *Storage[T]) *MPConstruct[T] {
	c := &MPConstruct[T]{}
	c.head.Store(s.Head())
	return c
}

// Construct implements §4.3, including the step-6 CAS-repair loop
// that pushes a cell back onto the head if the caller's factory
// fails after the cell was already removed from the list.
func (c *MPConstruct[T]) Construct(owner Destroyer[T], factory func() (T, error)) (*Cell[T], error) {
	h := c.head.Load()
	var n *Cell[T]
	for {
		n = h.Next()
		if n == nil {
			return nil, nil // h is the sentinel: pool exhausted
		}
		if c.head.CompareAndSwap(h, n) {
			break
		}
		h = c.head.Load()
	}

	val, err := factory()
	if err != nil {
		c.repair(h)
		return nil, err
	}

	h.SetOwner(owner)
	*h.Value() = val
	return h, nil
}

// repair reinserts a removed-but-unconstructed cell at the current
// head, retrying if it races with other producers (§4.3 step 6, §9
// Open Question: interleaving with concurrent normal producers is
// permitted nondeterminism as long as every CAS loop terminates).
func (c *MPConstruct[T]) repair(h *Cell[T]) {
	for {
		cur := c.head.Load()
		h.SetNext(cur)
		if c.head.CompareAndSwap(cur, h) {
			return
		}
	}
}
