package wire

import (
	"fmt"
	"io"

	"github.com/multiformats/go-varint"
	"google.golang.org/protobuf/encoding/protowire"
)

// Encoder 将基础类型写入字节流
//
// Encoder 不做缓冲，每次调用直接写入底层 io.Writer。
// 底层 Writer 的失败原样包装返回（不属于编解码错误）。
type Encoder struct {
	w   io.Writer
	buf []byte
}

// NewEncoder 创建编码器
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, buf: make([]byte, 0, 16)}
}

// WriteTag 写入记录标签
func (e *Encoder) WriteTag(tag Tag) error {
	if tag == 0 {
		return encodeErr("tag", ErrZeroTag)
	}
	return e.writeUvarint("tag", uint64(tag))
}

// WriteUvarint 写入无符号整数
//
// 可表示范围为 [0, 2^63-1]，与解码端的 varint 上限一致。
func (e *Encoder) WriteUvarint(v uint64) error {
	return e.writeUvarint("uvarint", v)
}

// WriteBool 写入布尔值（也用作可选值的存在标记）
func (e *Encoder) WriteBool(v bool) error {
	b := byte(0)
	if v {
		b = 1
	}
	e.buf = append(e.buf[:0], b)
	return e.flush()
}

// WriteBytes 写入长度前缀的字节序列
func (e *Encoder) WriteBytes(v []byte) error {
	if uint64(len(v)) > varint.MaxValueUvarint63 {
		return encodeErr("bytes", ErrValueOverflow)
	}
	e.buf = protowire.AppendBytes(e.buf[:0], v)
	return e.flush()
}

// WriteString 写入长度前缀的字符串
func (e *Encoder) WriteString(v string) error {
	e.buf = protowire.AppendString(e.buf[:0], v)
	return e.flush()
}

// WriteFixed 写入定长字节字段
//
// 线上格式与 WriteBytes 相同，解码端用 ReadFixed 校验长度。
func (e *Encoder) WriteFixed(v []byte) error {
	return e.WriteBytes(v)
}

func (e *Encoder) writeUvarint(op string, v uint64) error {
	if v > varint.MaxValueUvarint63 {
		return encodeErr(op, ErrValueOverflow)
	}
	e.buf = protowire.AppendVarint(e.buf[:0], v)
	return e.flush()
}

func (e *Encoder) flush() error {
	if _, err := e.w.Write(e.buf); err != nil {
		return fmt.Errorf("wire: write: %w", err)
	}
	return nil
}

// SizeUvarint 返回 v 编码后的字节数
func SizeUvarint(v uint64) int {
	return protowire.SizeVarint(v)
}
