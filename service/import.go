package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushteam/boardrec/core"
	"github.com/rushteam/boardrec/pkg/conv"
)

// GameRecord 是一条导入记录，Category 为逗号分隔的类别展示名，例如 "가족, 전략"。
type GameRecord struct {
	Name       string  `yaml:"name" json:"name"`
	MinPlayers int     `yaml:"min_players" json:"min_players"`
	MaxPlayers int     `yaml:"max_players" json:"max_players"`
	Difficulty float64 `yaml:"difficulty" json:"difficulty"`
	PlayTime   int     `yaml:"play_time" json:"play_time"`
	Category   string  `yaml:"category" json:"category"`
}

// ParseCategories 解析逗号分隔的类别展示名。无法识别的名称被静默丢弃。
func ParseCategories(text string) []core.Category {
	cats, _ := parseCategories(text)
	return cats
}

func parseCategories(text string) ([]core.Category, []string) {
	var dropped []string
	cats := conv.ConvertSlice(strings.Split(text, ","), func(token string) (core.Category, bool) {
		token = strings.TrimSpace(token)
		c, ok := core.LookupCategory(token)
		if !ok && token != "" {
			dropped = append(dropped, token)
		}
		return c, ok
	})
	return conv.Dedup(cats), dropped
}

// SaveGames 把导入记录转换为条目并写入目录，返回保存后的条目（含分配的 ID）。
// 不会刷新任何向量缓存。
func (s *Service) SaveGames(ctx context.Context, records []GameRecord) ([]*core.Game, error) {
	saved := make([]*core.Game, 0, len(records))
	for _, rec := range records {
		cats, dropped := parseCategories(rec.Category)
		if len(dropped) > 0 {
			s.logger.DebugContext(ctx, "drop unrecognized categories", "game", rec.Name, "tokens", dropped)
		}
		game := &core.Game{
			Name:       rec.Name,
			MinPlayers: rec.MinPlayers,
			MaxPlayers: rec.MaxPlayers,
			Difficulty: rec.Difficulty,
			PlayTime:   rec.PlayTime,
			Categories: cats,
		}
		if err := s.catalog.Save(ctx, game); err != nil {
			return saved, fmt.Errorf("save %q: %w", rec.Name, err)
		}
		saved = append(saved, game)
	}
	return saved, nil
}
