package types

import "github.com/dep2p/go-dep2p-routing/pkg/lib/wire"

// WireTag 实现 wire.Record
func (n *Name) WireTag() wire.Tag {
	return wire.TagName
}

// EncodeFields 写入字段元组：(name bytes[64])
func (n *Name) EncodeFields(enc *wire.Encoder) error {
	return enc.WriteFixed(n[:])
}

// DecodeFields 读取字段元组
//
// 长度不是 64 字节时返回包装 *wire.SizeMismatchError 的 *wire.DecodeError。
func (n *Name) DecodeFields(dec *wire.Decoder) error {
	var tmp Name
	if err := dec.ReadFixed(tmp[:]); err != nil {
		return err
	}
	*n = tmp
	return nil
}

// NameKind 返回 Name 记录的注册描述
func NameKind() wire.Kind {
	return wire.Kind{
		Tag:     wire.TagName,
		Name:    "name",
		Factory: func() wire.Record { return new(Name) },
	}
}
