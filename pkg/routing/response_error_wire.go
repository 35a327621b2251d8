package routing

import (
	"fmt"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// 线上种类名称
const (
	wireNoData            = "NoData"
	wireInvalidRequest    = "InvalidRequest"
	wireFailedToStoreData = "FailedToStoreData"
)

// WireTag 实现 wire.Record
func (e *ResponseError) WireTag() wire.Tag {
	return wire.TagResponseError
}

// EncodeFields 写入字段元组：(kind string, data optional bytes)
//
// 只有 FailedToStoreData 携带 data。
func (e *ResponseError) EncodeFields(enc *wire.Encoder) error {
	var name string
	switch e.kind {
	case KindNoData:
		name = wireNoData
	case KindInvalidRequest:
		name = wireInvalidRequest
	case KindFailedToStoreData:
		name = wireFailedToStoreData
	default:
		return &wire.EncodeError{Op: "response error", Err: fmt.Errorf("%w: %s", wire.ErrInvalidValue, e.kind)}
	}
	if err := enc.WriteString(name); err != nil {
		return err
	}
	hasData := e.kind == KindFailedToStoreData
	if err := enc.WriteBool(hasData); err != nil {
		return err
	}
	if hasData {
		return enc.WriteBytes(e.data)
	}
	return nil
}

// DecodeFields 读取字段元组
//
// 未知种类，或 FailedToStoreData 缺少 data，返回 *wire.DecodeError。
// 其他种类携带的 data 被忽略。
func (e *ResponseError) DecodeFields(dec *wire.Decoder) error {
	name, err := dec.ReadString()
	if err != nil {
		return err
	}
	present, err := dec.ReadBool()
	if err != nil {
		return err
	}
	var data []byte
	if present {
		if data, err = dec.ReadBytes(); err != nil {
			return err
		}
	}

	switch name {
	case wireNoData:
		*e = ResponseError{kind: KindNoData}
	case wireInvalidRequest:
		*e = ResponseError{kind: KindInvalidRequest}
	case wireFailedToStoreData:
		if !present {
			return &wire.DecodeError{Op: "response error", Err: fmt.Errorf("%w: no data in FailedToStoreData", wire.ErrInvalidValue)}
		}
		*e = ResponseError{kind: KindFailedToStoreData, data: data}
	default:
		return &wire.DecodeError{Op: "response error", Err: fmt.Errorf("%w: unrecognised kind %q", wire.ErrInvalidValue, name)}
	}
	return nil
}

// ResponseErrorKind 返回 ResponseError 记录的注册描述
func ResponseErrorKind() wire.Kind {
	return wire.Kind{
		Tag:     wire.TagResponseError,
		Name:    "response-error",
		Factory: func() wire.Record { return new(ResponseError) },
	}
}
