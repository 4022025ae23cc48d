// Package boardrec 是一个基于特征向量相似度的桌游推荐工具包。
//
// 设计要点：
// - 手工特征：每个条目按固定 schema 编码为定长向量（类别 One-Hot + 4 个归一化数值维度）
// - 显式刷新：向量缓存只在 RefreshCache / WeightRefreshCache 时重建，目录写入不会自动失效
// - 确定性排序：余弦相似度降序，分数相同按 ID 升序
package boardrec

import (
	"github.com/rushteam/boardrec/core"
	"github.com/rushteam/boardrec/feature"
	"github.com/rushteam/boardrec/service"
)

// 轻量 facade：便于用户直接 import "boardrec" 使用核心抽象。
type Game = core.Game
type Category = core.Category
type WeightOption = core.WeightOption
type WeightSet = core.WeightSet
type Catalog = core.Catalog
type Service = service.Service
type VectorCache = feature.VectorCache

var (
	NewService     = service.New
	NewVectorCache = feature.NewVectorCache
	NewWeightSet   = core.NewWeightSet
)
