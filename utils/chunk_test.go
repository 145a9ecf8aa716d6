package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Run("Splits into full groups and a shorter tail", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3)

		assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, chunks)
	})

	t.Run("Exact multiple has no empty tail", func(t *testing.T) {
		chunks := Chunk([]string{"a", "b", "c", "d"}, 2)

		assert.Len(t, chunks, 2)
		assert.Equal(t, []string{"c", "d"}, chunks[1])
	})

	t.Run("Empty input yields no groups", func(t *testing.T) {
		assert.Empty(t, Chunk([]int{}, 6))
		assert.Empty(t, Chunk[int](nil, 14))
	})

	t.Run("Non-positive size keeps everything together", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 0))
	})

	t.Run("Concatenation restores the input", func(t *testing.T) {
		items := make([]int, 47)
		for i := range items {
			items[i] = i
		}

		for _, size := range []int{1, 6, 14, 46, 47, 100} {
			chunks := Chunk(items, size)
			var joined []int
			for i, c := range chunks {
				if i < len(chunks)-1 {
					assert.Len(t, c, size)
				}
				assert.LessOrEqual(t, len(c), size)
				joined = append(joined, c...)
			}
			assert.Equal(t, items, joined, "size %d", size)
		}
	})

	t.Run("Appending to a chunk does not clobber the next one", func(t *testing.T) {
		chunks := Chunk([]int{1, 2, 3, 4}, 2)
		_ = append(chunks[0], 99)

		assert.Equal(t, []int{3, 4}, chunks[1])
	})
}
