package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/boardrec/core"
)

func testCatalog(t *testing.T, s core.Store, prefix string) {
	t.Helper()
	ctx := context.Background()
	c := NewStoreCatalog(s, prefix)

	all, err := c.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	skull := &core.Game{Name: "스컬", MinPlayers: 3, MaxPlayers: 6, Difficulty: 1.0, PlayTime: 15,
		Categories: []core.Category{core.CategoryParty}}
	dixit := &core.Game{Name: "딕싯", MinPlayers: 3, MaxPlayers: 6, Difficulty: 1.0, PlayTime: 30,
		Categories: []core.Category{core.CategoryParty, core.CategoryFamily}}
	require.NoError(t, c.Save(ctx, skull))
	require.NoError(t, c.Save(ctx, dixit))
	assert.NotZero(t, skull.ID)
	assert.NotEqual(t, skull.ID, dixit.ID)

	got, err := c.FindByName(ctx, "딕싯")
	require.NoError(t, err)
	assert.Equal(t, dixit, got)

	got, err = c.FindByID(ctx, skull.ID)
	require.NoError(t, err)
	assert.Equal(t, skull, got)

	_, err = c.FindByName(ctx, "뱅!")
	assert.True(t, core.IsNotFound(err))
	_, err = c.FindByID(ctx, 424242)
	assert.True(t, core.IsNotFound(err))

	// 同名保存就地更新
	again := &core.Game{Name: "스컬", MinPlayers: 3, MaxPlayers: 6, Difficulty: 1.5, PlayTime: 20}
	require.NoError(t, c.Save(ctx, again))
	assert.Equal(t, skull.ID, again.ID)

	all, err = c.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Equal(t, 1.5, all[0].Difficulty)

	err = c.Save(ctx, &core.Game{})
	assert.True(t, core.IsInvalidInput(err))

	testCatalogNameUnique(t, c)
}

func testCatalogNameUnique(t *testing.T, c *StoreCatalog) {
	t.Helper()
	ctx := context.Background()

	a := &core.Game{Name: "코드네임", MaxPlayers: 8}
	require.NoError(t, c.Save(ctx, a))

	// 显式 ID 不能抢占已被其他条目使用的名称
	err := c.Save(ctx, &core.Game{ID: 50, Name: "코드네임"})
	assert.True(t, core.IsInvalidInput(err), "err=%v", err)
	_, err = c.FindByID(ctx, 50)
	assert.True(t, core.IsNotFound(err))

	require.NoError(t, c.Save(ctx, &core.Game{ID: 50, Name: "스플렌더"}))
	got, err := c.FindByName(ctx, "코드네임")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "코드네임", got.Name)

	// 改名后旧名称不再可查，新名称指向同一 ID
	require.NoError(t, c.Save(ctx, &core.Game{ID: 50, Name: "아줄"}))
	_, err = c.FindByName(ctx, "스플렌더")
	assert.True(t, core.IsNotFound(err))
	got, err = c.FindByName(ctx, "아줄")
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.ID)

	// 旧名称释放后可以被其他条目使用
	require.NoError(t, c.Save(ctx, &core.Game{ID: 60, Name: "스플렌더"}))
	got, err = c.FindByName(ctx, "스플렌더")
	require.NoError(t, err)
	assert.Equal(t, int64(60), got.ID)

	all, err := c.FindAll(ctx)
	require.NoError(t, err)
	seen := make(map[string]int64, len(all))
	for _, g := range all {
		if id, dup := seen[g.Name]; dup {
			t.Fatalf("名称 %q 同时属于 id=%d 与 id=%d", g.Name, id, g.ID)
		}
		seen[g.Name] = g.ID
	}
}

func TestStoreCatalogConcurrentSaveSameName(t *testing.T) {
	ctx := context.Background()
	c := NewStoreCatalog(NewMemoryStore(), "")

	const n = 16
	games := make([]*core.Game, n)
	var wg sync.WaitGroup
	for i := range games {
		games[i] = &core.Game{Name: "정령섬", Difficulty: 4.0}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Save(ctx, games[i]))
		}()
	}
	wg.Wait()

	for _, g := range games {
		assert.Equal(t, games[0].ID, g.ID)
	}
	all, err := c.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, games[0].ID, all[0].ID)
}

func TestStoreCatalogDanglingNameIndex(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	c := NewStoreCatalog(s, "t")
	require.NoError(t, s.HSet(ctx, "t:names", "딕싯", []byte("7")))

	_, err := c.FindByName(ctx, "딕싯")
	assert.True(t, core.IsNotFound(err))

	// 名称索引指向不存在的条目时，显式 ID 可以接管该名称
	require.NoError(t, c.Save(ctx, &core.Game{ID: 3, Name: "딕싯"}))
	got, err := c.FindByName(ctx, "딕싯")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestStoreCatalogMemory(t *testing.T) {
	testCatalog(t, NewMemoryStore(), "")
}

func TestStoreCatalogRedis(t *testing.T) {
	addr := os.Getenv("BOARDREC_REDIS_ADDR")
	if addr == "" {
		t.Skip("需要设置 BOARDREC_REDIS_ADDR 连接真实的 Redis 才能运行")
	}
	s, err := NewRedisStore(context.Background(), addr, 15)
	require.NoError(t, err)
	defer s.Close()
	testCatalog(t, s, fmt.Sprintf("boardrec-test-%d", time.Now().UnixNano()))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	assert.Equal(t, "memory", m.Name())

	_, err := m.HGet(ctx, "h", "f")
	assert.True(t, core.IsStoreNotFound(err))

	buf := []byte("v1")
	require.NoError(t, m.HSet(ctx, "h", "f", buf))
	buf[0] = 'x'
	v, err := m.HGet(ctx, "h", "f")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	all, err := m.HGetAll(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, all)

	ok, err := m.HSetNX(ctx, "h", "f", []byte("v2"))
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = m.HSetNX(ctx, "h", "g", []byte("v2"))
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.HDel(ctx, "h", "g"))
	require.NoError(t, m.HDel(ctx, "missing", "g"))
	_, err = m.HGet(ctx, "h", "g")
	assert.True(t, core.IsStoreNotFound(err))

	n, err := m.Incr(ctx, "seq")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, _ = m.Incr(ctx, "seq")
	assert.Equal(t, int64(2), n)
	assert.NoError(t, m.Close())
}
