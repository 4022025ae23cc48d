package feature

import "github.com/rushteam/boardrec/core"

// dimensionSelector 返回某个加权选项控制的维度下标。
type dimensionSelector func(vocabSize int) []int

func categorySlots(vocabSize int) []int {
	idx := make([]int, vocabSize)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func numericSlot(slot int) dimensionSelector {
	return func(vocabSize int) []int { return []int{vocabSize + slot} }
}

// weightSelectors 把每个选项映射到它控制的维度组，选项之间互不影响。
var weightSelectors = map[core.WeightOption]dimensionSelector{
	core.WeightCategory:   categorySlots,
	core.WeightDifficulty: numericSlot(slotDifficulty),
	core.WeightMinPlayer:  numericSlot(slotMinPlayers),
	core.WeightMaxPlayer:  numericSlot(slotMaxPlayers),
	core.WeightPlayTime:   numericSlot(slotPlayTime),
}

// WeightedEncoder 在 PlainEncoder 的布局上，把 Options 选中的维度组乘以 WeightMultiplier。
// 向量只对编码时的 Options 有效。
type WeightedEncoder struct {
	Options core.WeightSet
}

func (e WeightedEncoder) Encode(game *core.Game) []float64 {
	vec := PlainEncoder{}.Encode(game)
	vocabSize := core.VocabularySize()
	for opt := range e.Options {
		sel, ok := weightSelectors[opt]
		if !ok {
			continue
		}
		for _, i := range sel(vocabSize) {
			vec[i] *= WeightMultiplier
		}
	}
	return vec
}

// EncodeWeighted 是 WeightedEncoder{Options: opts}.Encode 的便捷函数。
func EncodeWeighted(game *core.Game, opts core.WeightSet) []float64 {
	return WeightedEncoder{Options: opts}.Encode(game)
}
