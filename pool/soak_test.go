// File: pool/soak_test.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Multithreaded soak test (§8 scenario 5), grounded on the original
// implementation's allocatorTestThread/testMultithreaded: several
// goroutines hammer one shared MPMC pool with interleaved
// construct/release and the pool must come out of it fully drained
// and never corrupted.

package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMPMC_ConcurrentConstructRelease(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 5_000
	const capacity = goroutines * 32

	p, err := NewMPMC[testNode](capacity)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				h, err := p.ConstructValue(testNode{val1: uint32(g), val2: uint32(i)})
				if err != nil {
					t.Errorf("goroutine %d construct %d: %v", g, i, err)
					return
				}
				if h.Empty() {
					// The pool's capacity is smaller than the total
					// work; spin until a slot frees up rather than
					// treating exhaustion as a failure.
					for h.Empty() {
						h, err = p.ConstructValue(testNode{val1: uint32(g), val2: uint32(i)})
						if err != nil {
							t.Errorf("goroutine %d retry construct %d: %v", g, i, err)
							return
						}
					}
				}
				v := h.Value()
				if v.val1 != uint32(g) || v.val2 != uint32(i) {
					t.Errorf("goroutine %d iter %d: got %+v", g, i, *v)
				}
				if err := h.Release(); err != nil {
					t.Errorf("goroutine %d release %d: %v", g, i, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	// The pool must be fully drained: capacity successful constructs,
	// then Empty.
	var drained []Handle[testNode]
	for i := 0; i < capacity; i++ {
		h, err := p.ConstructValue(testNode{})
		require.NoError(t, err)
		require.False(t, h.Empty(), "pool lost capacity during the soak")
		drained = append(drained, h)
	}
	h, err := p.ConstructValue(testNode{})
	require.NoError(t, err)
	require.True(t, h.Empty())

	for _, h := range drained {
		h := h
		require.NoError(t, h.Release())
	}
}

func TestSPMC_ConcurrentReleases(t *testing.T) {
	const n = 4096
	const consumers = 8

	p, err := NewSPMC[testNode](n)
	require.NoError(t, err)

	handles := make([]Handle[testNode], n)
	for i := 0; i < n; i++ {
		h, err := p.ConstructValue(testNode{val1: uint32(i)})
		require.NoError(t, err)
		require.False(t, h.Empty())
		handles[i] = h
	}

	var wg sync.WaitGroup
	chunk := n / consumers
	for c := 0; c < consumers; c++ {
		start, end := c*chunk, (c+1)*chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				h := handles[i]
				if err := h.Release(); err != nil {
					t.Errorf("release %d: %v", i, err)
				}
			}
		}()
	}
	wg.Wait()

	count := 0
	for {
		h, err := p.ConstructValue(testNode{})
		require.NoError(t, err)
		if h.Empty() {
			break
		}
		count++
	}
	require.Equal(t, n, count)
}
