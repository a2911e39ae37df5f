// File: pool/exception_test.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Exception-safety scenario (§8 scenario 3): a factory that fails on
// every other call must never leak capacity and must never leave a
// partially-constructed cell reachable.

package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstruct_AlternatingFactoryFailureLeaksNoCapacity(t *testing.T) {
	const n = 100
	errBoom := errors.New("factory boom")

	for _, ctor := range []func(int) (*Pool[testNode], error){
		func(c int) (*Pool[testNode], error) { return NewSPSC[testNode](c) },
		func(c int) (*Pool[testNode], error) { return NewMPMC[testNode](c) },
	} {
		p, err := ctor(n)
		require.NoError(t, err)

		var live []Handle[testNode]
		calls := 0
		for len(live) < n {
			calls++
			shouldFail := calls%2 == 0
			h, err := p.Construct(func() (testNode, error) {
				if shouldFail {
					return testNode{}, errBoom
				}
				return testNode{val1: uint32(calls)}, nil
			})
			if shouldFail {
				require.True(t, h.Empty())
				require.ErrorIs(t, err, ErrConstructorFailure)
				require.ErrorIs(t, err, errBoom)
				continue
			}
			require.NoError(t, err)
			require.False(t, h.Empty())
			live = append(live, h)
		}
		require.Len(t, live, n)

		h, err := p.Construct(func() (testNode, error) { return testNode{}, nil })
		require.NoError(t, err)
		require.True(t, h.Empty(), "pool should be exhausted after exactly n live constructs")

		for _, h := range live {
			h := h
			require.NoError(t, h.Release())
		}
	}
}
