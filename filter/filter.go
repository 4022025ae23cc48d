package filter

import (
	"context"

	"github.com/rushteam/boardrec/core"
)

// Filter 判断一个候选条目是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断 game 是否应该被过滤
	ShouldFilter(ctx context.Context, game *core.Game) (bool, error)
}

// Chain 依次执行多个过滤器，任意一个返回 true 即过滤。
// 返回命中的过滤器名称（未命中为空串）。
func Chain(ctx context.Context, filters []Filter, game *core.Game) (bool, string, error) {
	for _, f := range filters {
		ok, err := f.ShouldFilter(ctx, game)
		if err != nil {
			return false, f.Name(), err
		}
		if ok {
			return true, f.Name(), nil
		}
	}
	return false, "", nil
}
