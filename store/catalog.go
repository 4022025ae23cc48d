package store

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/rushteam/boardrec/core"
)

// StoreCatalog 是基于 core.Store 的桌游目录实现。
//
// Key 布局：
//   - {KeyPrefix}:games  Hash，field = ID，value = JSON 编码的 core.Game
//   - {KeyPrefix}:names  Hash，field = 名称，value = ID（名称唯一索引）
//   - {KeyPrefix}:seq    自增计数器，用于分配 ID
type StoreCatalog struct {
	store core.Store

	KeyPrefix string
}

// NewStoreCatalog 创建一个基于 core.Store 的目录。
func NewStoreCatalog(s core.Store, keyPrefix string) *StoreCatalog {
	if keyPrefix == "" {
		keyPrefix = "boardrec"
	}
	return &StoreCatalog{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

func (c *StoreCatalog) gamesKey() string { return c.KeyPrefix + ":games" }
func (c *StoreCatalog) namesKey() string { return c.KeyPrefix + ":names" }
func (c *StoreCatalog) seqKey() string   { return c.KeyPrefix + ":seq" }

// FindAll 返回全部条目，按 ID 升序
func (c *StoreCatalog) FindAll(ctx context.Context) ([]*core.Game, error) {
	all, err := c.store.HGetAll(ctx, c.gamesKey())
	if err != nil {
		return nil, fmt.Errorf("catalog find all: %w", err)
	}
	games := make([]*core.Game, 0, len(all))
	for field, data := range all {
		g, err := decodeGame(data)
		if err != nil {
			return nil, fmt.Errorf("catalog decode %s: %w", field, err)
		}
		games = append(games, g)
	}
	slices.SortFunc(games, func(a, b *core.Game) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return games, nil
}

func (c *StoreCatalog) FindByName(ctx context.Context, name string) (*core.Game, error) {
	idData, err := c.store.HGet(ctx, c.namesKey(), name)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, core.ErrGameNotFound(name)
		}
		return nil, fmt.Errorf("catalog find %q: %w", name, err)
	}
	id, err := strconv.ParseInt(string(idData), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("catalog name index %q: %w", name, err)
	}
	g, err := c.FindByID(ctx, id)
	if core.IsNotFound(err) {
		// 名称索引指向已不存在的条目
		return nil, core.ErrGameNotFound(name)
	}
	return g, err
}

func (c *StoreCatalog) FindByID(ctx context.Context, id int64) (*core.Game, error) {
	data, err := c.store.HGet(ctx, c.gamesKey(), strconv.FormatInt(id, 10))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil, core.ErrGameIDNotFound(id)
		}
		return nil, fmt.Errorf("catalog find id=%d: %w", id, err)
	}
	return decodeGame(data)
}

// Save 写入条目并维护名称索引。
//   - ID 为 0：同名条目已存在时沿用其 ID，否则通过 {KeyPrefix}:seq 分配新 ID
//   - ID 非 0：名称已属于另一个仍存在的条目时返回 INVALID_INPUT；改名时移除旧名称索引
//
// 名称通过 HSetNX 占用，并发保存同一个新名称只会落到一个 ID 上（另一方分配到的 ID 被弃用）。
// 其余字段为最后写入者生效。
func (c *StoreCatalog) Save(ctx context.Context, game *core.Game) error {
	if game == nil || game.Name == "" {
		return core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: game name is required")
	}

	var (
		previous  *core.Game
		allocated bool
	)
	if game.ID == 0 {
		existing, err := c.FindByName(ctx, game.Name)
		switch {
		case err == nil:
			game.ID = existing.ID
		case core.IsNotFound(err):
			id, err := c.store.Incr(ctx, c.seqKey())
			if err != nil {
				return fmt.Errorf("catalog allocate id: %w", err)
			}
			game.ID = id
			allocated = true
		default:
			return err
		}
	} else {
		prev, err := c.FindByID(ctx, game.ID)
		switch {
		case err == nil:
			previous = prev
		case !core.IsNotFound(err):
			return err
		}
	}

	owner, err := c.claimName(ctx, game.Name, game.ID)
	if err != nil {
		return err
	}
	idField := strconv.FormatInt(game.ID, 10)
	if owner != game.ID {
		if allocated {
			game.ID = owner
			idField = strconv.FormatInt(owner, 10)
		} else {
			_, err := c.FindByID(ctx, owner)
			switch {
			case err == nil:
				return core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
					fmt.Sprintf("catalog: name %q already belongs to id=%d", game.Name, owner))
			case !core.IsNotFound(err):
				return err
			}
			// 名称索引指向已不存在的条目，直接接管
			if err := c.store.HSet(ctx, c.namesKey(), game.Name, []byte(idField)); err != nil {
				return fmt.Errorf("catalog index %q: %w", game.Name, err)
			}
		}
	}

	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("catalog encode %q: %w", game.Name, err)
	}
	if err := c.store.HSet(ctx, c.gamesKey(), idField, data); err != nil {
		return fmt.Errorf("catalog save %q: %w", game.Name, err)
	}

	if previous != nil && previous.Name != game.Name {
		if err := c.store.HDel(ctx, c.namesKey(), previous.Name); err != nil {
			return fmt.Errorf("catalog unindex %q: %w", previous.Name, err)
		}
	}
	return nil
}

// claimName 尝试占用名称索引，返回该名称当前归属的 ID。
func (c *StoreCatalog) claimName(ctx context.Context, name string, id int64) (int64, error) {
	ok, err := c.store.HSetNX(ctx, c.namesKey(), name, []byte(strconv.FormatInt(id, 10)))
	if err != nil {
		return 0, fmt.Errorf("catalog index %q: %w", name, err)
	}
	if ok {
		return id, nil
	}
	data, err := c.store.HGet(ctx, c.namesKey(), name)
	if err != nil {
		return 0, fmt.Errorf("catalog index %q: %w", name, err)
	}
	owner, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("catalog name index %q: %w", name, err)
	}
	return owner, nil
}

func decodeGame(data []byte) (*core.Game, error) {
	var g core.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

var _ core.Catalog = (*StoreCatalog)(nil)
