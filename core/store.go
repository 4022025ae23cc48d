package core

import "context"

// Store 是存储的领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 领域层不依赖基础设施层
//
// 使用场景：
//   - 目录持久化：store.StoreCatalog 以 Hash 保存条目与名称索引
//
// 实现：
//   - store.MemoryStore 实现此接口
//   - store.RedisStore 实现此接口
type Store interface {
	// Name 返回存储后端名称（用于日志）
	Name() string

	// HGet 读取 Hash 字段，字段不存在时返回 ErrStoreNotFound
	HGet(ctx context.Context, key, field string) ([]byte, error)

	// HSet 写入 Hash 字段
	HSet(ctx context.Context, key, field string, value []byte) error

	// HSetNX 仅当字段不存在时写入，返回是否写入成功（用于名称索引的占用）
	HSetNX(ctx context.Context, key, field string, value []byte) (bool, error)

	// HDel 删除 Hash 字段，字段不存在时不报错
	HDel(ctx context.Context, key, field string) error

	// HGetAll 读取整个 Hash
	HGetAll(ctx context.Context, key string) (map[string][]byte, error)

	// Incr 原子自增并返回新值（用于 ID 分配）
	Incr(ctx context.Context, key string) (int64, error)

	// Close 关闭连接/释放资源
	Close() error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")
)

// IsStoreNotFound 检查错误是否为 key 不存在
func IsStoreNotFound(err error) bool {
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleStore {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
