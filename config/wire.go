package config

import (
	"fmt"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// maxWireFieldSize 字段长度上限的上限
const maxWireFieldSize = 256 << 20

// WireConfig 线上编解码配置
type WireConfig struct {
	// MaxFieldSize 单个字节/字符串字段的最大长度
	// 默认值: 4 MiB
	MaxFieldSize int `json:"max_field_size"`

	// ValidateTags 解码时校验记录标签与期望类型一致
	// 默认值: true
	ValidateTags bool `json:"validate_tags"`
}

// DefaultWireConfig 返回默认的编解码配置
func DefaultWireConfig() WireConfig {
	return WireConfig{
		MaxFieldSize: wire.DefaultMaxFieldSize,
		ValidateTags: true,
	}
}

// Validate 验证编解码配置
func (c *WireConfig) Validate() error {
	if c.MaxFieldSize <= 0 {
		return fmt.Errorf("wire: max_field_size must be positive, got %d", c.MaxFieldSize)
	}
	if c.MaxFieldSize > maxWireFieldSize {
		return fmt.Errorf("wire: max_field_size %d exceeds limit %d", c.MaxFieldSize, maxWireFieldSize)
	}
	return nil
}

// DecoderOptions 转换为解码器选项
func (c *WireConfig) DecoderOptions() []wire.DecoderOption {
	return []wire.DecoderOption{
		wire.WithMaxFieldSize(c.MaxFieldSize),
		wire.WithTagValidation(c.ValidateTags),
	}
}
