// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// The eight named pool kinds from §5/§6: two storage flavours
// (dynamic, static) times four producer/consumer combinations.

package pool

import "github.com/momentics/freelistpool/internal/freelist"

func newPool[T any](capacity int, opts []Option[T], multiProducer, multiConsumer bool) (*Pool[T], error) {
	st, err := freelist.NewStorage[T](capacity)
	if err != nil {
		return nil, err
	}

	cfg := resolveOptions(opts)
	p := &Pool[T]{storage: st, finalizer: cfg.finalizer}

	if multiProducer {
		p.ctor = freelist.NewMPConstruct(st)
	} else {
		p.ctor = freelist.NewSPConstruct(st)
	}

	if multiConsumer {
		p.dtor = freelist.NewMCDestroy(st)
	} else {
		p.dtor = freelist.NewSCDestroy(st)
	}

	return p, nil
}

// NewSPSC creates a dynamic-capacity pool with a wait-free
// single-producer construct side and a wait-free single-consumer
// destroy side. capacity must be a runtime value >= 1; NewSPSC fails
// with ErrAllocationFailed if capacity exceeds the storage limit of
// 1<<40 cells.
func NewSPSC[T any](capacity int, opts ...Option[T]) (*Pool[T], error) {
	return newPool[T](capacity, opts, false, false)
}

// NewSPMC creates a dynamic-capacity pool with a wait-free
// single-producer construct side and a wait-free multi-consumer
// destroy side.
func NewSPMC[T any](capacity int, opts ...Option[T]) (*Pool[T], error) {
	return newPool[T](capacity, opts, false, true)
}

// NewMPSC creates a dynamic-capacity pool with a lock-free
// multi-producer construct side and a wait-free single-consumer
// destroy side.
func NewMPSC[T any](capacity int, opts ...Option[T]) (*Pool[T], error) {
	return newPool[T](capacity, opts, true, false)
}

// NewMPMC creates a dynamic-capacity pool with a lock-free
// multi-producer construct side and a wait-free multi-consumer
// destroy side.
func NewMPMC[T any](capacity int, opts ...Option[T]) (*Pool[T], error) {
	return newPool[T](capacity, opts, true, true)
}

// NewStaticSPSC is the compile-time-capacity flavor of NewSPSC (§6).
// Go has no value-level generic array-length parameter, so the static
// and dynamic flavours share one storage representation (§Open
// Question resolutions in DESIGN.md); NewStatic* documents "capacity
// is a literal known at the call site" and panics instead of
// returning an error, matching the source's static_assert semantics.
func NewStaticSPSC[T any](capacity int, opts ...Option[T]) *Pool[T] {
	return mustStatic(NewSPSC[T](capacity, opts...))
}

// NewStaticSPMC is the compile-time-capacity flavor of NewSPMC.
func NewStaticSPMC[T any](capacity int, opts ...Option[T]) *Pool[T] {
	return mustStatic(NewSPMC[T](capacity, opts...))
}

// NewStaticMPSC is the compile-time-capacity flavor of NewMPSC.
func NewStaticMPSC[T any](capacity int, opts ...Option[T]) *Pool[T] {
	return mustStatic(NewMPSC[T](capacity, opts...))
}

// NewStaticMPMC is the compile-time-capacity flavor of NewMPMC.
func NewStaticMPMC[T any](capacity int, opts ...Option[T]) *Pool[T] {
	return mustStatic(NewMPMC[T](capacity, opts...))
}

func mustStatic[T any](p *Pool[T], err error) *Pool[T] {
	if err != nil {
		panic(err)
	}
	return p
}
