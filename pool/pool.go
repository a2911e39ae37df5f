// File: pool/pool.go
// Package pool implements a fixed-capacity object pool (free list)
// over github.com/momentics/freelistpool/internal/freelist.
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool

import "github.com/momentics/freelistpool/internal/freelist"

// Pool composes a storage provider with one construct policy and one
// destroy policy (§4.1, §6). The four exported constructors in
// freelist.go select the policy pair; Pool itself is policy-agnostic.
type Pool[T any] struct {
	storage   *freelist.Storage[T]
	ctor      freelist.ConstructPolicy[T]
	dtor      freelist.DestroyPolicy[T]
	finalizer func(*T)
}

// Cap returns the pool's fixed capacity N.
func (p *Pool[T]) Cap() int { return p.storage.Len() }

// Construct in-place constructs a T via factory and returns a handle
// to it (§4.2, §4.3, §6).
//
// Three distinct outcomes, matching §7's error taxonomy:
//   - success: a non-empty Handle and a nil error.
//   - Empty: a zero Handle and a nil error — the pool is exhausted.
//     This is a normal return, not an error (§7).
//   - ConstructorFailure: a zero Handle and a non-nil error wrapping
//     ErrConstructorFailure. The free list is left exactly as it was
//     before the call.
func (p *Pool[T]) Construct(factory func() (T, error)) (Handle[T], error) {
	c, err := p.ctor.Construct(p, factory)
	if err != nil {
		return Handle[T]{}, wrapConstructorFailure(err)
	}
	if c == nil {
		return Handle[T]{}, nil
	}
	return Handle[T]{cell: c}, nil
}

// ConstructValue is a convenience wrapper over Construct for the
// common case where building a T cannot fail.
func (p *Pool[T]) ConstructValue(v T) (Handle[T], error) {
	return p.Construct(func() (T, error) { return v, nil })
}

// ReleaseCell implements freelist.Destroyer[T]. It is called through
// a cell's back-pointer by Handle.Release, never directly by clients.
func (p *Pool[T]) ReleaseCell(c *freelist.Cell[T]) {
	if p.finalizer != nil {
		p.finalizer(c.Value())
	}
	var zero T
	*c.Value() = zero
	c.ClearOwner()
	p.dtor.Unlink(c)
}

var _ freelist.Destroyer[struct{}] = (*Pool[struct{}])(nil)
