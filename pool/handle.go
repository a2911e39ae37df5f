// File: pool/handle.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Handle is the unique-ownership smart reference to a live T (§4.6).

package pool

import "github.com/momentics/freelistpool/internal/freelist"

// Handle wraps a live T inside one cell of one pool. Handle is
// pointer-sized: it carries a single pointer to the cell, per the
// handle-weight tradeoff documented in §9.
//
// Handle is movable but not copyable or clonable in spirit: Go cannot
// forbid struct copies at compile time, but copying a Handle and
// releasing more than one copy is a client contract violation, not a
// supported use (§4.6, §7 MisuseViolation).
type Handle[T any] struct {
	cell *freelist.Cell[T]
}

// Empty reports whether this handle is the null-equivalent returned
// on pool exhaustion (§4.7). A zero-value Handle is also Empty.
func (h Handle[T]) Empty() bool { return h.cell == nil }

// Value returns a pointer to the live T. It returns nil for an empty
// handle or after Release.
func (h Handle[T]) Value() *T {
	if h.cell == nil {
		return nil
	}
	return h.cell.Value()
}

// Release returns this handle's slot to its owning pool: it invokes
// T's destructor-equivalent and inserts the cell at the tail of the
// free list (§4.6). The owning pool is discovered through the cell's
// back-pointer, not through any field on Handle itself.
//
// Calling Release on an already-released or empty handle returns
// ErrMisuse without side effects; this detection is best-effort only,
// since a copy of a released Handle still carries the stale cell
// pointer and Release on that copy is undefined per §7.
func (h *Handle[T]) Release() error {
	if h == nil || h.cell == nil {
		return ErrMisuse
	}
	c := h.cell
	h.cell = nil
	c.Owner().ReleaseCell(c)
	return nil
}
