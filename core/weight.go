package core

import "strings"

// WeightOption 选择在加权查询中被放大的特征维度。
type WeightOption int

const (
	WeightMinPlayer WeightOption = iota
	WeightMaxPlayer
	WeightDifficulty
	WeightPlayTime
	WeightCategory
)

var weightOptionNames = [...]string{
	WeightMinPlayer:  "MINPLAYER",
	WeightMaxPlayer:  "MAXPLAYER",
	WeightDifficulty: "DIFFICULTY",
	WeightPlayTime:   "PLAYTIME",
	WeightCategory:   "CATEGORY",
}

func (o WeightOption) String() string {
	if o < 0 || int(o) >= len(weightOptionNames) {
		return "UNKNOWN"
	}
	return weightOptionNames[o]
}

// AllWeightOptions 按枚举顺序返回全部选项
func AllWeightOptions() []WeightOption {
	out := make([]WeightOption, len(weightOptionNames))
	for i := range weightOptionNames {
		out[i] = WeightOption(i)
	}
	return out
}

// ParseWeightOption 解析选项名（大小写不敏感）。
func ParseWeightOption(s string) (WeightOption, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, name := range weightOptionNames {
		if name == s {
			return WeightOption(i), nil
		}
	}
	return 0, NewDomainError(ModuleService, ErrorCodeInvalidInput, "unknown weight option: "+s)
}

// WeightSet 是一次加权查询选中的选项集合。
type WeightSet map[WeightOption]struct{}

// NewWeightSet 由选项列表构造集合，重复项会被合并。
func NewWeightSet(opts ...WeightOption) WeightSet {
	s := make(WeightSet, len(opts))
	for _, o := range opts {
		s[o] = struct{}{}
	}
	return s
}

// Has 判断选项是否被选中。nil 集合视为空集。
func (s WeightSet) Has(o WeightOption) bool {
	_, ok := s[o]
	return ok
}

// Options 按枚举顺序返回已选中的选项（便于日志与比较）。
func (s WeightSet) Options() []WeightOption {
	out := make([]WeightOption, 0, len(s))
	for i := range weightOptionNames {
		if s.Has(WeightOption(i)) {
			out = append(out, WeightOption(i))
		}
	}
	return out
}
