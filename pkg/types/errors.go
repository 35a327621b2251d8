package types

import "errors"

// ============================================================================
//                              Name 相关错误
// ============================================================================

var (
	// ErrInvalidName 无效的 Name（长度不是 64 字节或编码错误）
	ErrInvalidName = errors.New("invalid name")
)
