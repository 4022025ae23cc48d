package core

// Game 是目录中的一个桌游条目。
// ID 为稳定标识；Name 唯一，是对外的查询 key。
type Game struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	MinPlayers int        `json:"min_players"`
	MaxPlayers int        `json:"max_players"`
	Difficulty float64    `json:"difficulty"` // 预期 0-5
	PlayTime   int        `json:"play_time"`  // 分钟，预期 0-180+
	Categories []Category `json:"categories"`
}

// HasCategory 判断条目是否带有指定类别。nil 类别集合视为空集。
func (g *Game) HasCategory(c Category) bool {
	for _, gc := range g.Categories {
		if gc == c {
			return true
		}
	}
	return false
}

// Recommendation 是一次相似查询的单条结果。
type Recommendation struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
