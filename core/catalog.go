package core

import "context"

// Catalog 是桌游目录（持久化协作方）的领域接口。
//
// 实现：
//   - store.StoreCatalog（基于 core.Store，内存或 Redis）
type Catalog interface {
	// FindAll 返回目录中的全部条目
	FindAll(ctx context.Context) ([]*Game, error)

	// FindByName 按名称查找，不存在时返回 NOT_FOUND 错误
	FindByName(ctx context.Context, name string) (*Game, error)

	// FindByID 按 ID 查找，不存在时返回 NOT_FOUND 错误
	FindByID(ctx context.Context, id int64) (*Game, error)

	// Save 保存条目，名称在目录内唯一。ID 为 0 时分配新 ID 并回写到 game.ID，
	// 已存在同名条目时就地更新该条目；ID 非 0 且名称属于另一条目时返回 INVALID_INPUT。
	Save(ctx context.Context, game *Game) error
}
