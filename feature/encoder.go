package feature

import "github.com/rushteam/boardrec/core"

// 数值维度的固定缩放因子，把原始量级拉到可比较的范围。
// 不做截断：超出预期范围的输入会得到大于 1.0 的维度值。
const (
	DifficultyScale = 5.0
	MinPlayersScale = 1.0
	MaxPlayersScale = 10.0
	PlayTimeScale   = 180.0
)

// WeightMultiplier 是加权选项命中时维度组的放大倍数。
const WeightMultiplier = 3.0

// 数值维度紧跟在类别槽位之后，顺序固定。
const (
	slotDifficulty = iota
	slotMinPlayers
	slotMaxPlayers
	slotPlayTime
	numericSlots
)

// Dimension 返回特征向量长度：词表大小 + 4 个数值维度。
func Dimension() int {
	return core.VocabularySize() + numericSlots
}

// VectorEncoder 把一个桌游条目编码为定长特征向量。
type VectorEncoder interface {
	Encode(game *core.Game) []float64
}

// PlainEncoder 是不加权的编码器。
//
// 向量布局：
//   - [0, |词表|)：按词表顺序的 One-Hot 类别槽位（与条目中类别的插入顺序无关）
//   - difficulty/5, minPlayers/1, maxPlayers/10, playTime/180
type PlainEncoder struct{}

func (PlainEncoder) Encode(game *core.Game) []float64 {
	vocab := core.Vocabulary()
	vec := make([]float64, len(vocab)+numericSlots)
	if game == nil {
		return vec
	}
	for i, c := range vocab {
		if game.HasCategory(c) {
			vec[i] = 1.0
		}
	}
	base := len(vocab)
	vec[base+slotDifficulty] = game.Difficulty / DifficultyScale
	vec[base+slotMinPlayers] = float64(game.MinPlayers) / MinPlayersScale
	vec[base+slotMaxPlayers] = float64(game.MaxPlayers) / MaxPlayersScale
	vec[base+slotPlayTime] = float64(game.PlayTime) / PlayTimeScale
	return vec
}

// Encode 是 PlainEncoder{}.Encode 的便捷函数。
func Encode(game *core.Game) []float64 {
	return PlainEncoder{}.Encode(game)
}
