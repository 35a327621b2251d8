package routing

import (
	"errors"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// From 在函数边界把任意下级错误提升为路由错误
//
// 规则：
//   - nil → nil
//   - 错误链中已有 *Error → 该路由错误
//   - *InterfaceError（或链中含有）→ Interface 变体
//   - *ResponseError（或链中含有）→ Response 变体（跳级）
//   - 错误链中含编解码错误（wire.IsCodecError）→ Serialization 变体
//   - 其他 → Io 变体（不透明包装）
//
// 包装变体以 err 本身作为原因，调用方加上的上下文不会丢失。
// 返回值是 *Error，在返回 error 的函数里应先判断 nil，避免带类型的 nil。
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return re
	}
	var ie *InterfaceError
	if errors.As(err, &ie) {
		return &Error{kind: KindInterface, cause: err}
	}
	var rsp *ResponseError
	if errors.As(err, &rsp) {
		return &Error{kind: KindResponse, cause: err}
	}
	if wire.IsCodecError(err) {
		return WrapSerialization(err)
	}
	return WrapIO(err)
}

// IsKind 检查错误链中是否有指定种类的路由错误
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var re *Error
		if !errors.As(err, &re) {
			return false
		}
		if re.kind == kind {
			return true
		}
		err = re.cause
	}
	return false
}

// ResponseOf 返回错误链中的 ResponseError
func ResponseOf(err error) (*ResponseError, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
