package routing

// ============================================================================
//                              InterfaceError
// ============================================================================

// InterfaceKind 边界错误种类
type InterfaceKind uint8

const (
	// InterfaceAbort 显式中止，无底层原因
	InterfaceAbort InterfaceKind = iota + 1
	// InterfaceResponse 包装 ResponseError
	InterfaceResponse
)

// String 返回种类描述
func (k InterfaceKind) String() string {
	switch k {
	case InterfaceAbort:
		return "aborted"
	case InterfaceResponse:
		return "response error"
	default:
		return "unknown interface error"
	}
}

// InterfaceError 边界级失败
type InterfaceError struct {
	kind     InterfaceKind
	response *ResponseError
}

// ErrAbort 预定义的中止错误
var ErrAbort = NewAbort()

// NewAbort 创建中止错误
func NewAbort() *InterfaceError {
	return &InterfaceError{kind: InterfaceAbort}
}

// Kind 返回错误种类
func (e *InterfaceError) Kind() InterfaceKind {
	return e.kind
}

// Response 返回包装的 ResponseError，Abort 返回 nil
func (e *InterfaceError) Response() *ResponseError {
	return e.response
}

// Description 返回稳定描述
func (e *InterfaceError) Description() string {
	return e.kind.String()
}

// Cause 返回嵌套原因，仅 Response 变体非 nil
func (e *InterfaceError) Cause() error {
	if e.response == nil {
		return nil
	}
	return e.response
}

// Unwrap 实现错误解包
func (e *InterfaceError) Unwrap() error {
	return e.Cause()
}

// Error 实现 error 接口
func (e *InterfaceError) Error() string {
	if e.response != nil {
		return "interface error: " + e.response.Error()
	}
	return "interface error: " + e.kind.String()
}

// Is 按种类比较
func (e *InterfaceError) Is(target error) bool {
	t, ok := target.(*InterfaceError)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// ToRouting 包装为路由错误（Interface 变体）
func (e *InterfaceError) ToRouting() *Error {
	return WrapInterface(e)
}
