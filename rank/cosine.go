package rank

import "math"

// CosineSimilarity 计算余弦相似度：dot(a,b) / (|a|·|b|)。
//
// 退化情况返回 0（视为"不相似"而非错误）：
//   - 任一向量范数为 0
//   - 长度不一致或为空
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
