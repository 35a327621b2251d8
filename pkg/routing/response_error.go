package routing

import (
	"bytes"
	"fmt"
)

// ============================================================================
//                              ResponseError
// ============================================================================

// ResponseKind 响应错误种类
type ResponseKind uint8

const (
	// KindNoData 未找到数据
	KindNoData ResponseKind = iota + 1
	// KindInvalidRequest 无效请求
	KindInvalidRequest
	// KindFailedToStoreData 存储失败（携带被拒绝的数据）
	KindFailedToStoreData
)

// String 返回种类描述
func (k ResponseKind) String() string {
	switch k {
	case KindNoData:
		return "no data"
	case KindInvalidRequest:
		return "invalid request"
	case KindFailedToStoreData:
		return "failed to store data"
	default:
		return fmt.Sprintf("unknown response kind %d", uint8(k))
	}
}

// ResponseError 远端操作失败
//
// FailedToStoreData 携带被拒绝的数据，序列化回请求方时对方能看到被拒绝的内容。
type ResponseError struct {
	kind ResponseKind
	data []byte
}

// 预定义的响应错误，用于 errors.Is 按种类比较
var (
	ErrNoData            = NewNoData()
	ErrInvalidRequest    = NewInvalidRequest()
	ErrFailedToStoreData = NewFailedToStoreData(nil)
)

// NewNoData 创建 NoData 错误
func NewNoData() *ResponseError {
	return &ResponseError{kind: KindNoData}
}

// NewInvalidRequest 创建 InvalidRequest 错误
func NewInvalidRequest() *ResponseError {
	return &ResponseError{kind: KindInvalidRequest}
}

// NewFailedToStoreData 创建 FailedToStoreData 错误
//
// data 会被复制；nil 视为空数据。
func NewFailedToStoreData(data []byte) *ResponseError {
	d := make([]byte, len(data))
	copy(d, data)
	return &ResponseError{kind: KindFailedToStoreData, data: d}
}

// Kind 返回错误种类
func (e *ResponseError) Kind() ResponseKind {
	return e.kind
}

// Data 返回被拒绝数据的副本，非 FailedToStoreData 返回 nil
func (e *ResponseError) Data() []byte {
	if e.kind != KindFailedToStoreData {
		return nil
	}
	d := make([]byte, len(e.data))
	copy(d, e.data)
	return d
}

// Description 返回稳定描述
func (e *ResponseError) Description() string {
	return e.kind.String()
}

// Cause ResponseError 没有嵌套原因
func (e *ResponseError) Cause() error {
	return nil
}

// Error 实现 error 接口
func (e *ResponseError) Error() string {
	if e.kind == KindFailedToStoreData {
		return fmt.Sprintf("response error: %s (%d bytes)", e.kind, len(e.data))
	}
	return "response error: " + e.kind.String()
}

// Is 按种类比较，忽略携带的数据
func (e *ResponseError) Is(target error) bool {
	t, ok := target.(*ResponseError)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// Equal 结构相等（种类与数据都相同）
func (e *ResponseError) Equal(other *ResponseError) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.kind == other.kind && bytes.Equal(e.data, other.data)
}

// ToInterface 包装为 InterfaceError（Response 变体）
func (e *ResponseError) ToInterface() *InterfaceError {
	return &InterfaceError{kind: InterfaceResponse, response: e}
}

// ToRouting 直接包装为路由错误（Response 变体）
func (e *ResponseError) ToRouting() *Error {
	return WrapResponse(e)
}
