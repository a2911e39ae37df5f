// File: internal/freelist/destroy_sc.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Single-consumer destroy policy: wait-free, not safe to call
// concurrently from more than one thread (§4.4).

package freelist

// SCDestroy appends a cell to the tail of the free list with no
// atomics beyond the ones already on Cell.next.
type SCDestroy[T any] struct {
	tail *Cell[T]
}

// NewSCDestroy starts the policy at storage's sentinel, the initial
// tail.
func NewSCDestroy[T any](s *Storage[T]) *SCDestroy[T] {
	return &SCDestroy[T]{tail: s.Sentinel()}
}

// Unlink implements §4.4 steps 2-4. The caller (Pool) is responsible
// for step 1, invoking T's destructor-equivalent, before calling
// Unlink.
func (d *SCDestroy[T]) Unlink(c *Cell[T]) {
	c.SetNext(nil)
	d.tail.SetNext(c)
	d.tail = c
}
