package rank

import (
	"cmp"
	"slices"
)

// Scored 是一个候选 ID 及其与查询向量的相似度。
type Scored struct {
	ID    int64
	Score float64
}

// Rank 计算 query 与 candidates 中每个向量的相似度，剔除 excludeID（查询条目自身），
// 按分数降序排列；分数相同时按 ID 升序，保证结果确定。
func Rank(query []float64, candidates map[int64][]float64, excludeID int64) []Scored {
	out := make([]Scored, 0, len(candidates))
	for id, vec := range candidates {
		if id == excludeID {
			continue
		}
		out = append(out, Scored{ID: id, Score: CosineSimilarity(query, vec)})
	}
	slices.SortFunc(out, func(a, b Scored) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// TopK 返回 Rank 结果的前 k 个。k <= 0 时返回全部。
func TopK(query []float64, candidates map[int64][]float64, excludeID int64, k int) []Scored {
	ranked := Rank(query, candidates, excludeID)
	if k > 0 && len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
