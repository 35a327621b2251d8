package wire

import (
	"errors"
	"fmt"
)

// ============================================================================
//                              预定义错误
// ============================================================================

var (
	// ErrTruncated 记录在字段中途结束
	ErrTruncated = errors.New("wire: truncated record")

	// ErrFieldTooLarge 字段长度超过解码器上限
	ErrFieldTooLarge = errors.New("wire: field too large")

	// ErrInvalidBool 布尔字节既不是 0 也不是 1
	ErrInvalidBool = errors.New("wire: invalid bool value")

	// ErrVarint varint 格式错误（溢出或非最小编码）
	ErrVarint = errors.New("wire: malformed varint")

	// ErrValueOverflow 写入的整数超出 varint 可表示范围
	ErrValueOverflow = errors.New("wire: value exceeds varint range")

	// ErrTrailingData 记录之后存在多余字节
	ErrTrailingData = errors.New("wire: trailing data after record")

	// ErrInvalidValue 字段值不合法
	ErrInvalidValue = errors.New("wire: invalid field value")

	// ErrNilRecord 记录为 nil
	ErrNilRecord = errors.New("wire: nil record")
)

// 注册表错误
var (
	// ErrUnknownTag 标签未注册
	ErrUnknownTag = errors.New("wire: unknown record tag")

	// ErrTagInUse 标签已被占用
	ErrTagInUse = errors.New("wire: tag already registered")

	// ErrZeroTag 零标签保留不可用
	ErrZeroTag = errors.New("wire: zero tag is reserved")

	// ErrNilFactory 记录工厂为 nil
	ErrNilFactory = errors.New("wire: nil record factory")
)

// ============================================================================
//                              类型化错误
// ============================================================================

// SizeMismatchError 定长字段长度不匹配
type SizeMismatchError struct {
	Expected int
	Actual   int
}

// Error 实现 error 接口
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("wire: size mismatch: expected %d bytes, got %d", e.Expected, e.Actual)
}

// TagMismatchError 记录标签与期望不一致
type TagMismatchError struct {
	Expected Tag
	Actual   Tag
}

// Error 实现 error 接口
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("wire: tag mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// DecodeError 解码错误
//
// Op 标识失败的读取操作（如 "bytes"、"tag"、"name"），Err 为具体原因。
type DecodeError struct {
	Op  string
	Err error
}

// Error 实现 error 接口
func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: decode %s: %v", e.Op, e.Err)
}

// Unwrap 实现错误解包
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError 编码错误
type EncodeError struct {
	Op  string
	Err error
}

// Error 实现 error 接口
func (e *EncodeError) Error() string {
	return fmt.Sprintf("wire: encode %s: %v", e.Op, e.Err)
}

// Unwrap 实现错误解包
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsCodecError 检查错误链中是否包含编解码错误
//
// 底层 io.Reader/io.Writer 的失败不属于编解码错误。
func IsCodecError(err error) bool {
	var de *DecodeError
	if errors.As(err, &de) {
		return true
	}
	var ee *EncodeError
	return errors.As(err, &ee)
}

func decodeErr(op string, err error) error {
	return &DecodeError{Op: op, Err: err}
}

func encodeErr(op string, err error) error {
	return &EncodeError{Op: op, Err: err}
}
