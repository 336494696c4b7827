package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
)

func generateRandomInteger(min int, max int) int {
	return min + rand.Intn(max-min)
}

func TestPriorityQueue(t *testing.T) {
	pq := NewMinHeap[int32]()

	for i := 0; i < 10000; i++ {
		item := PriorityQueueNode[int32]{Rank: float64(generateRandomInteger(1, 10000)), Item: int32(i)}
		pq.Insert(item)

		if (i+1)%100 == 0 {
			item.Rank = float64(generateRandomInteger(0, int(item.Rank)))
			err := pq.DecreaseKey(item)
			assert.NoError(t, err)
		}
	}
	assert.Equal(t, 10000, pq.Size())

	prevItem, err := pq.ExtractMin()
	assert.NoError(t, err)
	for i := 1; i < 10000; i++ {
		item, err := pq.ExtractMin()
		assert.NoError(t, err)

		if prevItem.Rank > item.Rank {
			t.Fatalf("PriorityQueue is not sorted")
		}
		prevItem = item
	}

	_, err = pq.ExtractMin()
	assert.ErrorIs(t, err, ErrHeapEmpty)
}

func TestPriorityQueueTieBreak(t *testing.T) {
	pq := NewMinHeap[int32]()
	for _, id := range []int32{5, 3, 9, 1} {
		pq.Insert(PriorityQueueNode[int32]{Rank: 2, Item: id})
	}

	got := make([]int32, 0)
	for pq.Size() > 0 {
		n, _ := pq.ExtractMin()
		got = append(got, n.Item)
	}
	assert.Equal(t, []int32{1, 3, 5, 9}, got)
}

func TestPriorityQueueDecreaseKey(t *testing.T) {
	pq := NewMinHeap[int32]()
	pq.Insert(PriorityQueueNode[int32]{Rank: 10, Item: 1})
	pq.Insert(PriorityQueueNode[int32]{Rank: 20, Item: 2})

	assert.NoError(t, pq.DecreaseKey(PriorityQueueNode[int32]{Rank: 5, Item: 2}))
	assert.ErrorIs(t, pq.DecreaseKey(PriorityQueueNode[int32]{Rank: 50, Item: 1}), ErrRankIncrease)
	assert.ErrorIs(t, pq.DecreaseKey(PriorityQueueNode[int32]{Rank: 1, Item: 7}), ErrItemMissing)

	// re-insert of a queued item only lowers its rank
	pq.Insert(PriorityQueueNode[int32]{Rank: 100, Item: 2})
	assert.Equal(t, 2, pq.Size())

	min, err := pq.GetMin()
	assert.NoError(t, err)
	assert.Equal(t, int32(2), min.Item)
	assert.Equal(t, 5.0, min.Rank)
	assert.True(t, pq.Contains(1))
}

func BenchmarkPQDecreaseKey(b *testing.B) {
	pq := NewMinHeap[int32]()

	for i := 0; i < b.N; i++ {
		item := PriorityQueueNode[int32]{Rank: float64(generateRandomInteger(10000, 100000000)), Item: int32(i)}
		pq.Insert(item)
		item.Rank = float64(generateRandomInteger(0, int(item.Rank)))
		if err := pq.DecreaseKey(item); err != nil {
			b.Errorf("Error decrease key")
		}
	}
}
