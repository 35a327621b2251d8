package messages

import (
	"bytes"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
	"github.com/dep2p/go-dep2p-routing/pkg/routing"
)

// ============================================================================
//                              Result
// ============================================================================

// Result 成功载荷或响应错误，二者恰有其一
//
// Err 为 nil 表示成功，此时 Payload 有效；否则 Payload 无意义。
type Result struct {
	Payload []byte
	Err     *routing.ResponseError
}

// Ok 创建成功结果
func Ok(payload []byte) Result {
	return Result{Payload: payload}
}

// Fail 创建失败结果
func Fail(err *routing.ResponseError) Result {
	return Result{Err: err}
}

// IsOk 检查是否成功
func (r Result) IsOk() bool {
	return r.Err == nil
}

// Unpack 以 (载荷, error) 形式返回
//
// 失败时返回的 error 为 *routing.ResponseError。
func (r Result) Unpack() ([]byte, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Payload, nil
}

// Equal 结构相等
//
// 失败结果只比较错误，载荷被忽略。
func (r Result) Equal(other Result) bool {
	if r.IsOk() != other.IsOk() {
		return false
	}
	if !r.IsOk() {
		return r.Err.Equal(other.Err)
	}
	return bytes.Equal(r.Payload, other.Payload)
}

// EncodeResult 写入 (payload bytes, optional ResponseError 记录)
//
// 失败时 payload 槽位写入空占位。
func EncodeResult(enc *wire.Encoder, r Result) error {
	payload := r.Payload
	if !r.IsOk() {
		payload = nil
	}
	if err := enc.WriteBytes(payload); err != nil {
		return err
	}
	if err := enc.WriteBool(!r.IsOk()); err != nil {
		return err
	}
	if r.IsOk() {
		return nil
	}
	return wire.Encode(enc, r.Err)
}

// DecodeResult 读取 EncodeResult 写入的字段
func DecodeResult(dec *wire.Decoder) (Result, error) {
	payload, err := dec.ReadBytes()
	if err != nil {
		return Result{}, err
	}
	failed, err := dec.ReadBool()
	if err != nil {
		return Result{}, err
	}
	if !failed {
		return Ok(payload), nil
	}
	rsp := new(routing.ResponseError)
	if err := wire.Decode(dec, rsp); err != nil {
		return Result{}, err
	}
	return Fail(rsp), nil
}
