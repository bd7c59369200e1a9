package rlheap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

type keyed struct {
	key int
	id  int
}

func drain[T any](h *Heap[T]) []T {
	var retval []T
	for h.Len() > 0 {
		v, _ := h.Pop()
		retval = append(retval, v)
	}
	return retval
}

func TestHeapOrder(t *testing.T) {
	h := New(4, func(a, b int) bool { return a < b })
	for _, v := range []int{5, 3, 9, 1, 7} {
		h.Push(v)
	}
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, []int{1, 3, 5, 7, 9}, drain(h))
	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestHeapTiesByPushOrder(t *testing.T) {
	h := New(4, func(a, b keyed) bool { return a.key < b.key })
	h.Push(keyed{1, 0})
	h.Push(keyed{0, 1})
	h.Push(keyed{1, 2})
	h.Push(keyed{0, 3})
	h.Push(keyed{1, 4})
	var ids []int
	for _, k := range drain(h) {
		ids = append(ids, k.id)
	}
	assert.Equal(t, []int{1, 3, 0, 2, 4}, ids)
}

func TestHeapStableProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("drain is a stable sort by key", prop.ForAll(
		func(keys []int) bool {
			h := New(len(keys), func(a, b keyed) bool { return a.key < b.key })
			for i, k := range keys {
				h.Push(keyed{k % 4, i})
			}
			out := drain(h)
			if len(out) != len(keys) {
				return false
			}
			for i := 1; i < len(out); i++ {
				prev, cur := out[i-1], out[i]
				if prev.key > cur.key || (prev.key == cur.key && prev.id > cur.id) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))
	properties.TestingRun(t)
}
