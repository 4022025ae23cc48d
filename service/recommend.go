package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rushteam/boardrec/core"
	"github.com/rushteam/boardrec/feature"
	"github.com/rushteam/boardrec/filter"
	"github.com/rushteam/boardrec/rank"
)

// Service 串联 目录查询 → 编码 → 相似度排序 → ID 解析为名称。
//
// 缓存状态：plain 表在第一次 RefreshCache 之前为空；之后保持到下一次显式刷新，
// SaveGames 等目录写入不会触发刷新，因此在两次刷新之间新增或修改的条目不会出现在结果中
// （或以旧向量参与排序）。
//
// WeightedSearch 每次调用都会同步重建 weighted 表（代价与目录大小成正比）。
// 多个使用不同选项的 WeightedSearch 并发执行时，可能读到彼此写入的向量，此处不加锁。
type Service struct {
	catalog core.Catalog
	cache   *feature.VectorCache
	topK    int
	logger  *slog.Logger
}

// Option 配置 Service。
type Option func(*Service)

// WithTopK 设置返回结果数（<=0 时使用默认值）
func WithTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithLogger 设置日志
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New 创建推荐服务。cache 为 nil 时新建一个空缓存。
func New(catalog core.Catalog, cache *feature.VectorCache, opts ...Option) *Service {
	var defaults core.RecommendConfig = &core.DefaultRecommendConfig{}
	if cache == nil {
		cache = feature.NewVectorCache(feature.WithRefreshConcurrency(defaults.DefaultRefreshConcurrency()))
	}
	s := &Service{
		catalog: catalog,
		cache:   cache,
		topK:    defaults.DefaultTopK(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache 返回服务持有的向量缓存
func (s *Service) Cache() *feature.VectorCache { return s.cache }

// RefreshCache 读取全部条目并刷新 plain 表
func (s *Service) RefreshCache(ctx context.Context) error {
	games, err := s.catalog.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.RefreshPlain(ctx, games); err != nil {
		return fmt.Errorf("refresh plain cache: %w", err)
	}
	s.logger.DebugContext(ctx, "vector cache refreshed", "table", feature.TablePlain.String(), "games", len(games))
	return nil
}

// WeightRefreshCache 读取全部条目并以 opts 刷新 weighted 表
func (s *Service) WeightRefreshCache(ctx context.Context, opts core.WeightSet) error {
	games, err := s.catalog.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.RefreshWeighted(ctx, games, opts); err != nil {
		return fmt.Errorf("refresh weighted cache: %w", err)
	}
	s.logger.DebugContext(ctx, "vector cache refreshed",
		"table", feature.TableWeighted.String(),
		"games", len(games),
		"options", fmt.Sprint(opts.Options()))
	return nil
}

// Search 返回与 name 最相似的至多 topK 个条目名称（不含自身）。
// name 不存在时返回 NOT_FOUND 错误。
func (s *Service) Search(ctx context.Context, name string) ([]string, error) {
	recs, err := s.SearchDetailed(ctx, name)
	if err != nil {
		return nil, err
	}
	return names(recs), nil
}

// SearchDetailed 同 Search，但返回 ID 与相似度分数
func (s *Service) SearchDetailed(ctx context.Context, name string) ([]core.Recommendation, error) {
	game, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	ranked := rank.TopK(feature.Encode(game), s.cache.Snapshot(feature.TablePlain), game.ID, s.topK)
	return s.resolve(ctx, ranked, nil)
}

// SearchFiltered 在 plain 表上排序后，只保留满足 CEL 表达式的候选，再截取 topK。
// 非法表达式返回 INVALID_INPUT 错误。
func (s *Service) SearchFiltered(ctx context.Context, name, expr string) ([]core.Recommendation, error) {
	exprFilter, err := filter.NewExprFilter(expr)
	if err != nil {
		return nil, err
	}
	return s.SearchWithFilters(ctx, name, exprFilter)
}

// SearchWithFilters 在 plain 表上排序后依次应用 filters，跳过被过滤的候选直到凑满 topK。
func (s *Service) SearchWithFilters(ctx context.Context, name string, filters ...filter.Filter) ([]core.Recommendation, error) {
	game, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	ranked := rank.Rank(feature.Encode(game), s.cache.Snapshot(feature.TablePlain), game.ID)
	return s.resolve(ctx, ranked, filters)
}

// ExcludeByName 把名称解析为 ID 并构造黑名单过滤器，名称不存在时返回 NOT_FOUND 错误。
func (s *Service) ExcludeByName(ctx context.Context, names ...string) (*filter.ExcludeFilter, error) {
	ids := make([]int64, 0, len(names))
	for _, n := range names {
		g, err := s.catalog.FindByName(ctx, n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, g.ID)
	}
	return filter.NewExcludeFilter(ids...), nil
}

// WeightedSearch 先以 opts 重建 weighted 表，再返回与 name 最相似的至多 topK 个条目名称。
func (s *Service) WeightedSearch(ctx context.Context, name string, opts core.WeightSet) ([]string, error) {
	recs, err := s.WeightedSearchDetailed(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	return names(recs), nil
}

// WeightedSearchDetailed 同 WeightedSearch，但返回 ID 与相似度分数
func (s *Service) WeightedSearchDetailed(ctx context.Context, name string, opts core.WeightSet) ([]core.Recommendation, error) {
	if err := s.WeightRefreshCache(ctx, opts); err != nil {
		return nil, err
	}
	game, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	query := feature.EncodeWeighted(game, opts)
	ranked := rank.TopK(query, s.cache.Snapshot(feature.TableWeighted), game.ID, s.topK)
	return s.resolve(ctx, ranked, nil)
}

// resolve 按排序顺序把 ID 解析为条目，跳过目录中已不存在的 ID 以及被过滤的候选，
// 最多返回 topK 个。
func (s *Service) resolve(ctx context.Context, ranked []rank.Scored, filters []filter.Filter) ([]core.Recommendation, error) {
	out := make([]core.Recommendation, 0, s.topK)
	for _, r := range ranked {
		if len(out) >= s.topK {
			break
		}
		game, err := s.catalog.FindByID(ctx, r.ID)
		if err != nil {
			if core.IsNotFound(err) {
				s.logger.WarnContext(ctx, "skip stale cache entry", "id", r.ID)
				continue
			}
			return nil, err
		}
		if len(filters) > 0 {
			drop, by, err := filter.Chain(ctx, filters, game)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", by, err)
			}
			if drop {
				continue
			}
		}
		out = append(out, core.Recommendation{ID: game.ID, Name: game.Name, Score: r.Score})
	}
	return out, nil
}

func names(recs []core.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}
