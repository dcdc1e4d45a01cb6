package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coveredIndices flattens rows back into the set of item indices.
func coveredIndices(rows []Row) []int {
	var out []int
	for _, row := range rows {
		out = append(out, row.Items...)
	}
	return out
}

func TestPackCoversEveryItemExactlyOnce(t *testing.T) {
	tests := []struct {
		name      string
		weights   []int
		threshold float64
	}{
		{"mixed weights", []int{3, 1, 3, 0}, 2},
		{"all large", []int{5, 4, 6}, 2},
		{"all small", []int{1, 1, 0}, 2},
		{"single item", []int{7}, 2},
		{"alternating", []int{0, 9, 0, 9, 0, 9}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Pack(tt.weights, tt.threshold)
			seen := make(map[int]bool)
			for _, idx := range coveredIndices(rows) {
				assert.False(t, seen[idx], "index %d emitted twice", idx)
				seen[idx] = true
			}
			assert.Len(t, seen, len(tt.weights))
		})
	}
}

func TestPackEmptyInput(t *testing.T) {
	assert.Empty(t, Pack(nil, 2))
	assert.Empty(t, Pack([]int{}, 0))
}

func TestPackEqualWeightsAllSingletons(t *testing.T) {
	// The threshold comparison is strict, so equal weights at the
	// threshold never pair.
	rows := Pack([]int{2, 2, 2, 2}, 2)
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.False(t, row.Paired)
		assert.Len(t, row.Items, 1)
	}
}

func TestPackPairsLargeFirst(t *testing.T) {
	rows := Pack([]int{3, 1, 3, 0}, 2)
	require.Len(t, rows, 2)

	require.True(t, rows[0].Paired)
	assert.Equal(t, []int{0, 1}, rows[0].Items)
	require.True(t, rows[1].Paired)
	assert.Equal(t, []int{2, 3}, rows[1].Items)
}

func TestPackSmallItemFirstStillLeadsWithLarge(t *testing.T) {
	// Item 0 is small; the first large partner sits later in the list but
	// still takes slot 0 of the row.
	rows := Pack([]int{1, 5, 1}, 2)
	require.Len(t, rows, 2)
	assert.Equal(t, []int{1, 0}, rows[0].Items)
	assert.Equal(t, []int{2}, rows[1].Items)
	assert.False(t, rows[1].Paired)
}

func TestHighlightSlotAlternates(t *testing.T) {
	assert.Equal(t, 0, HighlightSlot(0))
	assert.Equal(t, 1, HighlightSlot(1))
	assert.Equal(t, 0, HighlightSlot(2))
	assert.Equal(t, 1, HighlightSlot(3))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		want    float64
	}{
		{"empty is zero", nil, 0},
		{"single", []int{4}, 4},
		{"odd count", []int{1, 9, 3}, 3},
		{"even count averages the middles", []int{1, 2, 3, 10}, 2.5},
		{"unsorted input", []int{9, 1, 5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.weights))
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	weights := []int{3, 1, 2}
	Median(weights)
	assert.Equal(t, []int{3, 1, 2}, weights)
}

func TestGridClass(t *testing.T) {
	assert.Equal(t, "", gridClass([]int{3, 1}), "two items stay single column")
	assert.Equal(t, "", gridClass([]int{0, 0, 0}), "all-zero weights stay single column")
	assert.Equal(t, "grid-2-1", gridClass([]int{0, 1, 0}))
	assert.Equal(t, "grid-2-1", gridClass([]int{3, 1, 3, 0}))
}
