// Package htab provides a fixed-bucket chained hash table with a pluggable
// hash function.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package htab

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// implementation:
// - bucket array sized once at construction, singly-linked collision chains
// - no auto-resize; lookup cost tracks count/buckets
// motivation:
// - predictable footprint for tables whose population is known up front
// usage:
// - single-threaded, same as vec; wrap with your own lock otherwise

type (
	entry[K comparable, V any] struct {
		next *entry[K, V]
		key  K
		val  V
	}
	Table[K comparable, V any] struct {
		hash    func(K) uint64
		buckets []*entry[K, V]
		count   int
	}
)

// New returns a table with the given number of buckets; hash maps a key to
// its 64-bit distribution value.
func New[K comparable, V any](buckets int, hash func(K) uint64) *Table[K, V] {
	if buckets < 1 {
		panic(fmt.Sprintf("htab: invalid bucket count %d", buckets))
	}
	if hash == nil {
		panic("htab: nil hash function")
	}
	return &Table[K, V]{hash: hash, buckets: make([]*entry[K, V], buckets)}
}

// NewStr is New for string keys hashed with xxhash.
func NewStr[V any](buckets int) *Table[string, V] {
	return New[string, V](buckets, xxhash.Sum64String)
}

func (t *Table[K, V]) Len() int { return t.count }

// Set inserts or replaces the value for k.
func (t *Table[K, V]) Set(k K, v V) {
	head := &t.buckets[t.hash(k)%uint64(len(t.buckets))]
	for e := *head; e != nil; e = e.next {
		if e.key == k {
			e.val = v
			return
		}
	}
	*head = &entry[K, V]{next: *head, key: k, val: v}
	t.count++
}

func (t *Table[K, V]) Get(k K) (v V, ok bool) {
	for e := t.buckets[t.hash(k)%uint64(len(t.buckets))]; e != nil; e = e.next {
		if e.key == k {
			return e.val, true
		}
	}
	return
}

// Delete removes k's entry, if any.
func (t *Table[K, V]) Delete(k K) bool {
	p := &t.buckets[t.hash(k)%uint64(len(t.buckets))]
	for e := *p; e != nil; e = e.next {
		if e.key == k {
			*p = e.next
			t.count--
			return true
		}
		p = &e.next
	}
	return false
}

// Clear drops all entries; the table remains usable.
func (t *Table[K, V]) Clear() {
	clear(t.buckets)
	t.count = 0
}

// Range calls f for every (key, value) in unspecified order until f
// returns false.
func (t *Table[K, V]) Range(f func(K, V) bool) {
	for _, e := range t.buckets {
		for ; e != nil; e = e.next {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}
