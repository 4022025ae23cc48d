package core

// RecommendConfig 是推荐相关的配置接口，用于提供默认值。
type RecommendConfig interface {
	// DefaultTopK 返回默认的 TopK 结果数
	DefaultTopK() int

	// DefaultRefreshConcurrency 返回刷新缓存时的默认并发数
	DefaultRefreshConcurrency() int
}

// DefaultRecommendConfig 是默认的推荐配置实现。
type DefaultRecommendConfig struct{}

func (c *DefaultRecommendConfig) DefaultTopK() int {
	return 3
}

func (c *DefaultRecommendConfig) DefaultRefreshConcurrency() int {
	return 4
}
