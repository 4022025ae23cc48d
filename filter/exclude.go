package filter

import (
	"context"
	"slices"

	"github.com/rushteam/boardrec/core"
)

// ExcludeFilter 是 ID 黑名单过滤器，过滤掉 IDs 中的条目。
type ExcludeFilter struct {
	// IDs 是需要排除的条目 ID 列表
	IDs []int64
}

// NewExcludeFilter 创建一个 ID 黑名单过滤器。
func NewExcludeFilter(ids ...int64) *ExcludeFilter {
	return &ExcludeFilter{IDs: ids}
}

func (f *ExcludeFilter) Name() string {
	return "filter.exclude"
}

func (f *ExcludeFilter) ShouldFilter(_ context.Context, game *core.Game) (bool, error) {
	if game == nil {
		return true, nil
	}
	return slices.Contains(f.IDs, game.ID), nil
}
