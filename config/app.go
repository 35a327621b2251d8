package config

import (
	"fmt"
	"time"
)

// AppConfig 依赖注入应用配置
type AppConfig struct {
	// StartTimeout 应用启动超时
	// 默认值: 15s
	StartTimeout Duration `json:"start_timeout"`

	// StopTimeout 应用停止超时
	// 默认值: 15s
	StopTimeout Duration `json:"stop_timeout"`
}

// DefaultAppConfig 返回默认的应用配置
func DefaultAppConfig() AppConfig {
	return AppConfig{
		StartTimeout: Duration(15 * time.Second),
		StopTimeout:  Duration(15 * time.Second),
	}
}

// Validate 验证应用配置
func (c *AppConfig) Validate() error {
	if c.StartTimeout <= 0 {
		return fmt.Errorf("app: start_timeout must be positive")
	}
	if c.StopTimeout <= 0 {
		return fmt.Errorf("app: stop_timeout must be positive")
	}
	return nil
}
