// Package freelist implements the intrusive singly linked free list
// underlying github.com/momentics/freelistpool/pool: cell layout,
// storage allocation, and the four construct/destroy policy
// combinations (single- and multi-producer, single- and
// multi-consumer).
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// This package has no knowledge of Handle or of finalizers; it only
// manages cells and the free list threaded through them. The pool
// package composes a Storage with one ConstructPolicy and one
// DestroyPolicy and layers the public API on top.
package freelist
