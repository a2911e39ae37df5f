// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Functional options for pool construction, matching the teacher's
// own constructor-argument style in pool/numapool.go and
// pool/bufferpool.go rather than a parsed-config surface: a pool has
// no outer configuration of its own (§AMBIENT STACK).

package pool

// Option configures a Pool at construction time.
type Option[T any] func(*config[T])

type config[T any] struct {
	finalizer func(*T)
}

// WithFinalizer registers a callback run on a live T immediately
// before its cell returns to the free list — the Go stand-in for
// invoking T's destructor (§3, Live interpretation).
func WithFinalizer[T any](f func(*T)) Option[T] {
	return func(c *config[T]) { c.finalizer = f }
}

func resolveOptions[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
