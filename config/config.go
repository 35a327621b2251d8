// Package config 提供统一的配置管理
//
// 每个关注点一个配置结构体，各自提供默认值（Default*Config）和 Validate。
// Config 汇总所有子配置，可以从 JSON 加载。
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config 总配置
type Config struct {
	// Wire 线上编解码配置
	Wire WireConfig `json:"wire"`

	// Log 日志配置
	Log LogConfig `json:"log"`

	// App 依赖注入应用配置
	App AppConfig `json:"app"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Wire: DefaultWireConfig(),
		Log:  DefaultLogConfig(),
		App:  DefaultAppConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.Wire.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.App.Validate(); err != nil {
		return err
	}
	return nil
}

// FromJSON 从 JSON 数据创建配置
//
// 缺省字段保留默认值。
//
// 示例 JSON:
//
//	{
//	  "wire": {"max_field_size": 1048576, "validate_tags": true},
//	  "log": {"level": "debug"},
//	  "app": {"start_timeout": "5s"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadFile 从 JSON 文件加载并验证配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
