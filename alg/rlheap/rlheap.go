// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlheap is a binary min-heap of typed items. Items comparing equal
// under Less are popped in the order they were pushed, so the order of
// results never depends on the content of the items.
package rlheap

type item[T any] struct {
	value T
	seq   uint64
}

type Heap[T any] struct {
	items []item[T]
	less  func(a, b T) bool
	seq   uint64
}

func New[T any](capacity int, less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{items: make([]item[T], 0, capacity), less: less}
}

func (h *Heap[T]) Len() int {
	return len(h.items)
}

func (h *Heap[T]) lessAt(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

// Push pushes the element x onto the heap. The complexity is
// O(log(n)) where n = h.Len().
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, item[T]{x, h.seq})
	h.seq++
	h.up(len(h.items) - 1)
}

// Pop removes the minimum element (according to Less, then push order).
// The complexity is O(log(n)) where n = h.Len().
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}
	n := len(h.items) - 1
	h.items[0], h.items[n] = h.items[n], h.items[0]
	h.down(0, n)
	retval := h.items[n].value
	h.items = h.items[:n]
	return retval, true
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.lessAt(j, i) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

func (h *Heap[T]) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.lessAt(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.lessAt(j, i) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
