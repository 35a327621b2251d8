package wire

import (
	"bytes"
	"errors"
	"io"
)

// Record 可在网络上传输的结构化记录
//
// WireTag 返回记录类型的模式标签；EncodeFields/DecodeFields 只处理标签之后的字段元组。
// 解码方法需要指针接收者，因此通常由 *T 实现本接口。
type Record interface {
	WireTag() Tag
	EncodeFields(enc *Encoder) error
	DecodeFields(dec *Decoder) error
}

// Encode 写入 <tag><字段元组>
func Encode(enc *Encoder, rec Record) error {
	if rec == nil {
		return encodeErr("record", ErrNilRecord)
	}
	if err := enc.WriteTag(rec.WireTag()); err != nil {
		return err
	}
	return rec.EncodeFields(enc)
}

// Decode 读取标签并解码字段元组到 rec
//
// 解码器开启标签校验时（默认），标签与 rec.WireTag() 不一致返回
// 包装 *TagMismatchError 的 *DecodeError。
func Decode(dec *Decoder, rec Record) error {
	if rec == nil {
		return decodeErr("record", ErrNilRecord)
	}
	tag, err := dec.ReadTag()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return decodeErr("tag", ErrTruncated)
		}
		return err
	}
	if dec.validateTags && tag != rec.WireTag() {
		return decodeErr("tag", &TagMismatchError{Expected: rec.WireTag(), Actual: tag})
	}
	return rec.DecodeFields(dec)
}

// Marshal 将记录编码为字节切片
func Marshal(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(NewEncoder(&buf), rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal 从字节切片解码一条完整记录
//
// data 必须恰好包含一条记录，多余字节返回 ErrTrailingData。
func Unmarshal(data []byte, rec Record, opts ...DecoderOption) error {
	r := bytes.NewReader(data)
	if err := Decode(NewDecoder(r, opts...), rec); err != nil {
		return err
	}
	if r.Len() != 0 {
		return decodeErr("record", ErrTrailingData)
	}
	return nil
}
