package store

import (
	"context"
	"fmt"

	"github.com/rushteam/boardrec/config"
	"github.com/rushteam/boardrec/core"
)

// NewStore 根据配置创建 Store 实例（工厂方法）。
func NewStore(ctx context.Context, cfg config.StoreConfig) (core.Store, error) {
	switch cfg.Type {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		s, err := NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		return s, nil
	default:
		return nil, core.NewDomainError(core.ModuleStore, core.ErrorCodeNotSupported, "store: unsupported type "+cfg.Type)
	}
}
