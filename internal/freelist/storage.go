// File: internal/freelist/storage.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Storage allocates the N+1 cell array (N usable slots plus the
// sentinel) and threads the initial free list through it.

package freelist

import (
	"errors"
	"unsafe"
)

// ErrAllocationFailed mirrors the C++ source's std::bad_alloc path for
// the dynamic-capacity flavor: the requested capacity would require an
// allocation this process cannot plausibly satisfy.
var ErrAllocationFailed = errors.New("freelist: allocation failed")

// maxCells caps capacity so the cell-count * cell-size multiplication
// used internally by make() cannot overflow and so a pathological
// request fails fast with ErrAllocationFailed instead of reaching the
// runtime allocator and panicking, which is the Go-native analogue of
// aligned_alloc returning nil in the source this is modeled on.
const maxCells = 1 << 40

// Storage owns the contiguous cell array for one pool. Its base
// address is stable for the pool's lifetime; it is never resized.
type Storage[T any] struct {
	cells []Cell[T]
}

// NewStorage allocates capacity+1 cells (capacity usable slots plus a
// sentinel) and wires head -> cell[0] -> ... -> cell[capacity] (nil),
// per the initialization algorithm in §4.1.
func NewStorage[T any](capacity int) (*Storage[T], error) {
	if capacity < 1 {
		return nil, errors.New("freelist: capacity must be >= 1")
	}

	var probe Cell[T]
	cellSize := uint64(unsafe.Sizeof(probe))
	if cellSize == 0 {
		cellSize = 1
	}
	if capacity > maxCells {
		return nil, ErrAllocationFailed
	}
	totalBytes := cellSize * uint64(capacity+1)
	if totalBytes/cellSize != uint64(capacity+1) {
		return nil, ErrAllocationFailed // overflow
	}

	cells := make([]Cell[T], capacity+1)
	for i := 0; i < capacity; i++ {
		cells[i].SetNext(&cells[i+1])
	}
	cells[capacity].SetNext(nil)

	return &Storage[T]{cells: cells}, nil
}

// Head returns the first usable cell, the initial head of the free
// list.
func (s *Storage[T]) Head() *Cell[T] { return &s.cells[0] }

// Sentinel returns the N+1-th cell, the initial tail of the free list.
// The list always holds one cell more than can be handed out, so "free
// list empty" is observable as head.Next() == nil rather than a
// separate flag. Which cell plays that role moves with the tail: once
// cells have been released behind it, the N+1-th cell is handed out
// like any other and the last released cell becomes the end marker.
func (s *Storage[T]) Sentinel() *Cell[T] { return &s.cells[len(s.cells)-1] }

// Len returns the usable capacity N (excluding the sentinel).
func (s *Storage[T]) Len() int { return len(s.cells) - 1 }
