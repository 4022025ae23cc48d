package core

// Category 是桌游类别标签。
// 词表顺序固定，决定特征向量中 One-Hot 槽位的布局。
type Category int

const (
	CategoryStrategy Category = iota
	CategoryParty
	CategoryFamily
	CategoryMystery
	CategoryCooperative
	CategoryDeckBuilding
	CategoryAbstract
	CategoryWargame
)

type categoryInfo struct {
	name        string // 规范名（用于配置 / CLI / 存储）
	displayName string // 展示名（导入数据中的类别文本）
}

var categoryTable = [...]categoryInfo{
	CategoryStrategy:     {name: "STRATEGY", displayName: "전략"},
	CategoryParty:        {name: "PARTY", displayName: "파티"},
	CategoryFamily:       {name: "FAMILY", displayName: "가족"},
	CategoryMystery:      {name: "MYSTERY", displayName: "추리"},
	CategoryCooperative:  {name: "COOPERATIVE", displayName: "협력"},
	CategoryDeckBuilding: {name: "DECK_BUILDING", displayName: "덱빌딩"},
	CategoryAbstract:     {name: "ABSTRACT", displayName: "추상전략"},
	CategoryWargame:      {name: "WARGAME", displayName: "워게임"},
}

// Vocabulary 返回按固定顺序排列的全部类别。
// 每次返回新的切片，调用方可以自由修改。
func Vocabulary() []Category {
	out := make([]Category, len(categoryTable))
	for i := range categoryTable {
		out[i] = Category(i)
	}
	return out
}

// VocabularySize 返回词表大小。
func VocabularySize() int { return len(categoryTable) }

// Valid 判断类别是否属于词表。
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryTable)
}

// String 返回规范名，例如 "STRATEGY"。
func (c Category) String() string {
	if !c.Valid() {
		return "UNKNOWN"
	}
	return categoryTable[c].name
}

// DisplayName 返回展示名，例如 "전략"。
func (c Category) DisplayName() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].displayName
}

// LookupCategory 按展示名查找类别，未匹配返回 false。
func LookupCategory(displayName string) (Category, bool) {
	for i, info := range categoryTable {
		if info.displayName == displayName {
			return Category(i), true
		}
	}
	return 0, false
}

// ParseCategory 按规范名查找类别，未匹配返回 false。
func ParseCategory(name string) (Category, bool) {
	for i, info := range categoryTable {
		if info.name == name {
			return Category(i), true
		}
	}
	return 0, false
}

// MarshalText 以规范名序列化，存储层的 JSON 依赖此方法。
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, NewDomainError(ModuleCatalog, ErrorCodeInvalidInput, "invalid category")
	}
	return []byte(c.String()), nil
}

// UnmarshalText 从规范名反序列化。
func (c *Category) UnmarshalText(text []byte) error {
	v, ok := ParseCategory(string(text))
	if !ok {
		return NewDomainError(ModuleCatalog, ErrorCodeInvalidInput, "unknown category: "+string(text))
	}
	*c = v
	return nil
}
