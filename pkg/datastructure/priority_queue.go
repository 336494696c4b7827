package datastructure

import (
	"cmp"
	"errors"
)

var (
	ErrHeapEmpty   = errors.New("priority queue is empty")
	ErrItemMissing = errors.New("item not in priority queue")
	ErrRankIncrease = errors.New("new rank is greater than current rank")
)

type PriorityQueueNode[T cmp.Ordered] struct {
	Rank float64
	Item T
}

// MinHeap is a binary heap keyed by Rank, ties broken by Item, with decrease-key.
type MinHeap[T cmp.Ordered] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T cmp.Ordered]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if len(h.heap) == 0 {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	return h.heap[0], nil
}

// Insert adds node. If the item is already queued its rank is lowered instead.
func (h *MinHeap[T]) Insert(node PriorityQueueNode[T]) {
	if i, ok := h.pos[node.Item]; ok {
		if node.Rank < h.heap[i].Rank {
			h.heap[i].Rank = node.Rank
			h.heapifyUp(i)
		}
		return
	}
	h.heap = append(h.heap, node)
	h.pos[node.Item] = len(h.heap) - 1
	h.heapifyUp(len(h.heap) - 1)
}

func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if len(h.heap) == 0 {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}
	return root, nil
}

func (h *MinHeap[T]) DecreaseKey(node PriorityQueueNode[T]) error {
	i, ok := h.pos[node.Item]
	if !ok {
		return ErrItemMissing
	}
	if node.Rank > h.heap[i].Rank {
		return ErrRankIncrease
	}
	h.heap[i].Rank = node.Rank
	h.heapifyUp(i)
	return nil
}

func (h *MinHeap[T]) less(i, j int) bool {
	if h.heap[i].Rank != h.heap[j].Rank {
		return h.heap[i].Rank < h.heap[j].Rank
	}
	return h.heap[i].Item < h.heap[j].Item
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

func (h *MinHeap[T]) heapifyUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MinHeap[T]) heapifyDown(i int) {
	n := len(h.heap)
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(left, smallest) {
			smallest = left
		}
		if right < n && h.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
