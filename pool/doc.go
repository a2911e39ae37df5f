// Package pool implements a fixed-capacity object pool (free list)
// for recycling storage of one element type T at rates substantially
// higher than the general-purpose heap.
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// A pool is created with a fixed capacity N and hands out Handle[T]
// values through Construct. Dropping a handle via Release returns its
// slot and runs any registered finalizer. Four concurrency variants
// are available — NewSPSC, NewSPMC, NewMPSC, NewMPMC — selecting the
// construct (producer) and destroy (consumer) side independently from
// {single-thread, multi-thread}; NewStatic* wraps each for callers
// whose capacity is a compile-time literal.
//
// See github.com/momentics/freelistpool/internal/freelist for the
// underlying intrusive free list and its four policy implementations.
package pool
