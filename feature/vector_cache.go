package feature

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/boardrec/core"
)

// Table 标识向量缓存中的一张表。
type Table int

const (
	// TablePlain 保存 PlainEncoder 的向量
	TablePlain Table = iota
	// TableWeighted 保存最近一次加权刷新的向量
	TableWeighted
)

func (t Table) String() string {
	switch t {
	case TablePlain:
		return "plain"
	case TableWeighted:
		return "weighted"
	default:
		return "unknown"
	}
}

// VectorCache 是 ID -> 特征向量 的并发安全缓存，包含 plain 与 weighted 两张独立的表。
//
// 一致性语义：
//   - 只追加 / 覆盖，不裁剪：目录中已删除的 ID 会一直留在表里，解析名称时由调用方跳过
//   - 只保证单条目原子性：刷新过程中并发读取可能看到新旧条目混合
//   - 两次刷新可以交错写入，不做整表互斥
//   - weighted 表不按选项集合分别保存，每次加权刷新都会覆盖全部条目
//   - 目录写入不会自动失效缓存，调用方需要显式刷新
type VectorCache struct {
	tables      [2]*vectorTable
	concurrency int
}

type vectorTable struct {
	mu      sync.RWMutex
	vectors map[int64][]float64
}

// CacheOption 配置 VectorCache。
type CacheOption func(*VectorCache)

// WithRefreshConcurrency 设置刷新时编码的最大并发数（<=0 表示串行）。
func WithRefreshConcurrency(n int) CacheOption {
	return func(c *VectorCache) {
		c.concurrency = n
	}
}

// NewVectorCache 创建空的向量缓存
func NewVectorCache(opts ...CacheOption) *VectorCache {
	c := &VectorCache{
		tables: [2]*vectorTable{
			{vectors: make(map[int64][]float64)},
			{vectors: make(map[int64][]float64)},
		},
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *VectorCache) table(t Table) *vectorTable {
	if t < 0 || int(t) >= len(c.tables) {
		return nil
	}
	return c.tables[t]
}

// Put 写入（覆盖）单个条目
func (c *VectorCache) Put(t Table, id int64, vec []float64) error {
	tbl := c.table(t)
	if tbl == nil {
		return core.NewDomainError(core.ModuleCache, core.ErrorCodeInvalidInput, "cache: unknown table")
	}
	tbl.mu.Lock()
	tbl.vectors[id] = vec
	tbl.mu.Unlock()
	return nil
}

// Get 读取单个条目
func (c *VectorCache) Get(t Table, id int64) ([]float64, bool) {
	tbl := c.table(t)
	if tbl == nil {
		return nil, false
	}
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	vec, ok := tbl.vectors[id]
	return vec, ok
}

// Len 返回表中条目数
func (c *VectorCache) Len(t Table) int {
	tbl := c.table(t)
	if tbl == nil {
		return 0
	}
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	return len(tbl.vectors)
}

// Snapshot 返回表的浅拷贝。向量切片与缓存共享，调用方只读。
func (c *VectorCache) Snapshot(t Table) map[int64][]float64 {
	tbl := c.table(t)
	if tbl == nil {
		return nil
	}
	tbl.mu.RLock()
	defer tbl.mu.RUnlock()
	out := make(map[int64][]float64, len(tbl.vectors))
	for id, vec := range tbl.vectors {
		out[id] = vec
	}
	return out
}

// Refresh 用 enc 编码 games 并逐条写入表 t。
// 条目逐个写入，不存在于 games 中的旧条目保留。
func (c *VectorCache) Refresh(ctx context.Context, t Table, games []*core.Game, enc VectorEncoder) error {
	if c.table(t) == nil {
		return core.NewDomainError(core.ModuleCache, core.ErrorCodeInvalidInput, "cache: unknown table")
	}
	eg, ctx := errgroup.WithContext(ctx)
	if c.concurrency > 0 {
		eg.SetLimit(c.concurrency)
	} else {
		eg.SetLimit(1)
	}
	for _, g := range games {
		if g == nil {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.Put(t, g.ID, enc.Encode(g))
		})
	}
	return eg.Wait()
}

// RefreshPlain 用 PlainEncoder 刷新 plain 表
func (c *VectorCache) RefreshPlain(ctx context.Context, games []*core.Game) error {
	return c.Refresh(ctx, TablePlain, games, PlainEncoder{})
}

// RefreshWeighted 用 opts 刷新 weighted 表，无条件覆盖上一次加权刷新的向量
func (c *VectorCache) RefreshWeighted(ctx context.Context, games []*core.Game, opts core.WeightSet) error {
	return c.Refresh(ctx, TableWeighted, games, WeightedEncoder{Options: opts})
}
