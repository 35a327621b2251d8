package messages

import (
	"fmt"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
	"github.com/dep2p/go-dep2p-routing/pkg/routing"
	"github.com/dep2p/go-dep2p-routing/pkg/types"
)

// ============================================================================
//                              PutDataResponse
// ============================================================================

// PutDataResponse 存储请求的回复
type PutDataResponse struct {
	// Name 被存储数据的标识符
	Name types.Name
	// Data 存储结果
	Data Result
}

// NewPutDataResponse 创建存储成功的回复
func NewPutDataResponse(name types.Name, payload []byte) *PutDataResponse {
	return &PutDataResponse{Name: name, Data: Ok(payload)}
}

// NewPutDataFailure 创建存储失败的回复
func NewPutDataFailure(name types.Name, err *routing.ResponseError) *PutDataResponse {
	return &PutDataResponse{Name: name, Data: Fail(err)}
}

// WireTag 实现 wire.Record
func (m *PutDataResponse) WireTag() wire.Tag {
	return wire.TagPutDataResponse
}

// EncodeFields 实现 wire.Record
func (m *PutDataResponse) EncodeFields(enc *wire.Encoder) error {
	if err := wire.Encode(enc, &m.Name); err != nil {
		return err
	}
	return EncodeResult(enc, m.Data)
}

// DecodeFields 实现 wire.Record
func (m *PutDataResponse) DecodeFields(dec *wire.Decoder) error {
	var name types.Name
	if err := wire.Decode(dec, &name); err != nil {
		return err
	}
	res, err := DecodeResult(dec)
	if err != nil {
		return err
	}
	m.Name = name
	m.Data = res
	return nil
}

// Equal 结构相等
func (m *PutDataResponse) Equal(other *PutDataResponse) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Name == other.Name && m.Data.Equal(other.Data)
}

// String 返回调试字符串
func (m *PutDataResponse) String() string {
	if m.Data.IsOk() {
		return fmt.Sprintf("PutDataResponse{name=%s, ok=%d bytes}", m.Name.ShortString(), len(m.Data.Payload))
	}
	return fmt.Sprintf("PutDataResponse{name=%s, err=%q}", m.Name.ShortString(), m.Data.Err.Error())
}

// PutDataResponseKind 返回 PutDataResponse 记录的注册描述
func PutDataResponseKind() wire.Kind {
	return wire.Kind{
		Tag:     wire.TagPutDataResponse,
		Name:    "put-data-response",
		Factory: func() wire.Record { return new(PutDataResponse) },
	}
}

// CoreKinds 返回保留标签上的核心记录类型
func CoreKinds() []wire.Kind {
	return []wire.Kind{
		types.NameKind(),
		routing.ResponseErrorKind(),
		PutDataResponseKind(),
	}
}

// RegisterCore 在注册表中登记核心记录类型
func RegisterCore(reg *wire.Registry) error {
	return reg.RegisterAll(CoreKinds()...)
}
