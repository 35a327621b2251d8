package routing

import "fmt"

// ============================================================================
//                              路由错误种类
// ============================================================================

// Kind 路由错误种类
type Kind uint8

// 直接变体：路由引擎逻辑直接产生的协议故障
const (
	// KindBadAuthority 权限校验失败
	KindBadAuthority Kind = iota + 1
	// KindAlreadyConnected 重复连接
	KindAlreadyConnected
	// KindUnknownMessageType 未知消息类型
	KindUnknownMessageType
	// KindFilterCheckFailed 过滤/去重检查失败
	KindFilterCheckFailed
	// KindFailedToBootstrap 引导失败
	KindFailedToBootstrap
	// KindRoutingTableEmpty 路由表为空
	KindRoutingTableEmpty
)

// 包装变体：携带下级失败作为原因
const (
	// KindInterface 包装 InterfaceError
	KindInterface Kind = iota + 100
	// KindIo 包装 I/O 失败
	KindIo
	// KindSerialization 包装序列化失败
	KindSerialization
	// KindResponse 包装 ResponseError
	KindResponse
)

// String 返回种类描述
func (k Kind) String() string {
	switch k {
	case KindBadAuthority:
		return "bad authority"
	case KindAlreadyConnected:
		return "already connected"
	case KindUnknownMessageType:
		return "unknown message type"
	case KindFilterCheckFailed:
		return "filter check failed"
	case KindFailedToBootstrap:
		return "failed to bootstrap"
	case KindRoutingTableEmpty:
		return "routing table empty"
	case KindInterface:
		return "interface error"
	case KindIo:
		return "i/o error"
	case KindSerialization:
		return "serialization error"
	case KindResponse:
		return "response error"
	default:
		return fmt.Sprintf("unknown routing error %d", uint8(k))
	}
}

// IsWrapping 检查是否为包装变体
func (k Kind) IsWrapping() bool {
	switch k {
	case KindInterface, KindIo, KindSerialization, KindResponse:
		return true
	default:
		return false
	}
}

// ============================================================================
//                              Error
// ============================================================================

// Error 路由引擎的总错误类型
//
// 直接变体没有原因；包装变体保留原始错误作为可检查的原因。
type Error struct {
	kind  Kind
	cause error
}

// 预定义的直接变体，用于返回和 errors.Is 比较
var (
	ErrBadAuthority       = New(KindBadAuthority)
	ErrAlreadyConnected   = New(KindAlreadyConnected)
	ErrUnknownMessageType = New(KindUnknownMessageType)
	ErrFilterCheckFailed  = New(KindFilterCheckFailed)
	ErrFailedToBootstrap  = New(KindFailedToBootstrap)
	ErrRoutingTableEmpty  = New(KindRoutingTableEmpty)
)

// New 创建直接变体
//
// kind 必须是直接变体；包装变体请使用 Wrap* 构造函数。
func New(kind Kind) *Error {
	if kind.IsWrapping() {
		panic("routing: New called with wrapping kind " + kind.String())
	}
	return &Error{kind: kind}
}

// WrapInterface 包装 InterfaceError
func WrapInterface(err *InterfaceError) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindInterface, cause: err}
}

// WrapResponse 包装 ResponseError
func WrapResponse(err *ResponseError) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindResponse, cause: err}
}

// WrapIO 包装 I/O 失败，原因原样保留
func WrapIO(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindIo, cause: err}
}

// WrapSerialization 包装序列化失败，原因原样保留
func WrapSerialization(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: KindSerialization, cause: err}
}

// Kind 返回错误种类
func (e *Error) Kind() Kind {
	return e.kind
}

// Description 返回稳定描述
func (e *Error) Description() string {
	return e.kind.String()
}

// Cause 返回嵌套原因，仅包装变体非 nil
func (e *Error) Cause() error {
	return e.cause
}

// Unwrap 实现错误解包
func (e *Error) Unwrap() error {
	return e.cause
}

// Error 实现 error 接口
//
// Interface/Response 变体直接显示下级错误；Io/Serialization 在原因前加上种类描述。
func (e *Error) Error() string {
	switch {
	case e.cause == nil:
		return "routing error: " + e.kind.String()
	case e.kind == KindInterface || e.kind == KindResponse:
		return "routing error: " + e.cause.Error()
	default:
		return fmt.Sprintf("routing error: %s: %v", e.kind, e.cause)
	}
}

// Is 按种类比较
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}
