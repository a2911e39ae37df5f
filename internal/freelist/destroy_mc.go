// File: internal/freelist/destroy_mc.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Multi-consumer destroy policy: wait-free, safe from any number of
// threads concurrently (§4.5).

package freelist

import (
	"sync/atomic"
)

// MCDestroy appends a cell via an atomic exchange followed by a link
// write. The exchange alone linearises all concurrent destroys; the
// link write is what makes the cell reachable from construct, and the
// brief gap between the two is the documented transient-starvation
// window in §4.5 — not a correctness violation.
type MCDestroy[T any] struct {
	tail atomic.Pointer[Cell[T]]
	_    pad
}

// NewMCDestroy starts the policy at storage's sentinel, the initial
// tail.
func NewMCDestroy[T any](s *Storage[T]) *MCDestroy[T] {
	d := &MCDestroy[T]{}
	d.tail.Store(s.Sentinel())
	return d
}

// Unlink implements §4.5 steps 2-4. The caller (Pool) is responsible
// for step 1, invoking T's destructor-equivalent, before calling
// Unlink.
func (d *MCDestroy[T]) Unlink(c *Cell[T]) {
	c.SetNext(nil)
	prev := d.tail.Swap(c)
	prev.SetNext(c)
}
