package config

import (
	"fmt"
	"strings"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/log"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别：debug/info/warn/error
	// 默认值: "info"
	Level string `json:"level"`

	// Format 输出格式：text/json
	// 默认值: "text"
	Format string `json:"format"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c *LogConfig) Validate() error {
	if _, err := log.ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("log: unknown format %q", c.Format)
	}
}

// Apply 将配置应用到全局日志
func (c *LogConfig) Apply() error {
	lvl, err := log.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetJSON(strings.EqualFold(c.Format, "json"))
	return nil
}
