package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankExcludesQueryAndSortsDescending(t *testing.T) {
	candidates := map[int64][]float64{
		1: {1, 0, 0},
		2: {1, 1, 0},
		3: {0, 1, 0},
		4: {1, 0.1, 0},
		5: {0, 0, 0},
	}
	ranked := Rank([]float64{1, 0, 0}, candidates, 1)
	require.Len(t, ranked, 4)

	ids := make([]int64, 0, len(ranked))
	for i, r := range ranked {
		assert.NotEqual(t, int64(1), r.ID)
		ids = append(ids, r.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Score, r.Score)
		}
	}
	assert.Equal(t, []int64{4, 2, 3, 5}, ids)
	assert.Equal(t, 0.0, ranked[3].Score)
}

func TestRankTieBreakByAscendingID(t *testing.T) {
	candidates := map[int64][]float64{
		30: {1, 1},
		10: {1, 1},
		20: {1, 1},
		5:  {0, 1},
	}
	for i := 0; i < 20; i++ {
		ranked := Rank([]float64{1, 1}, candidates, -1)
		require.Len(t, ranked, 4)
		assert.Equal(t, int64(10), ranked[0].ID)
		assert.Equal(t, int64(20), ranked[1].ID)
		assert.Equal(t, int64(30), ranked[2].ID)
		assert.Equal(t, int64(5), ranked[3].ID)
	}
}

func TestTopK(t *testing.T) {
	candidates := map[int64][]float64{
		1: {1, 0},
		2: {0.9, 0.1},
		3: {0.5, 0.5},
		4: {0.1, 0.9},
		5: {0, 1},
	}
	top := TopK([]float64{1, 0}, candidates, 1, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []int64{2, 3, 4}, []int64{top[0].ID, top[1].ID, top[2].ID})

	assert.Len(t, TopK([]float64{1, 0}, candidates, 1, 0), 4)
	assert.Len(t, TopK([]float64{1, 0}, candidates, 1, 10), 4)
	assert.Empty(t, TopK([]float64{1, 0}, nil, 1, 3))
}
