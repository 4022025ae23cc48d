package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config 是应用配置（YAML）。
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Recommend RecommendConfig `yaml:"recommend"`
	Store     StoreConfig     `yaml:"store"`
}

// RecommendConfig 推荐参数。
type RecommendConfig struct {
	TopK               int `yaml:"top_k"`
	RefreshConcurrency int `yaml:"refresh_concurrency"`
}

// StoreConfig 目录存储后端。Type 为 memory 或 redis。
type StoreConfig struct {
	Type      string      `yaml:"type"`
	KeyPrefix string      `yaml:"key_prefix"`
	Redis     RedisConfig `yaml:"redis"`
}

// RedisConfig Redis 连接参数。
type RedisConfig struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

// Load 从 YAML 文件加载配置；文件不存在时返回默认配置。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML 内容并填充默认值。
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Recommend.TopK <= 0 {
		cfg.Recommend.TopK = 3
	}
	if cfg.Recommend.RefreshConcurrency <= 0 {
		cfg.Recommend.RefreshConcurrency = 4
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = "memory"
	}
	if cfg.Store.KeyPrefix == "" {
		cfg.Store.KeyPrefix = "boardrec"
	}
	if cfg.Store.Type == "redis" && cfg.Store.Redis.Addr == "" {
		cfg.Store.Redis.Addr = "localhost:6379"
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Store.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported store type %q (supported: memory, redis)", c.Store.Type)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel 返回 log_level 对应的 slog 级别
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return lvl, nil
}
