package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/multiformats/go-varint"
)

// DefaultMaxFieldSize 默认单个字段的最大长度（4 MiB）
const DefaultMaxFieldSize = 4 << 20

// Decoder 从字节流读取基础类型
//
// Decoder 不会预读：每次只从底层 io.Reader 消费当前字段所需的字节，
// 因此同一个流上可以连续解码多条记录。
type Decoder struct {
	r            io.Reader
	br           io.ByteReader
	one          [1]byte
	maxFieldSize int
	validateTags bool
}

// DecoderOption 解码器选项
type DecoderOption func(*Decoder)

// WithMaxFieldSize 设置单个字段的最大长度
//
// n <= 0 时使用 DefaultMaxFieldSize。
func WithMaxFieldSize(n int) DecoderOption {
	return func(d *Decoder) {
		if n <= 0 {
			n = DefaultMaxFieldSize
		}
		d.maxFieldSize = n
	}
}

// WithTagValidation 设置是否校验记录标签（默认开启）
func WithTagValidation(enabled bool) DecoderOption {
	return func(d *Decoder) {
		d.validateTags = enabled
	}
}

// NewDecoder 创建解码器
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:            r,
		maxFieldSize: DefaultMaxFieldSize,
		validateTags: true,
	}
	if br, ok := r.(io.ByteReader); ok {
		d.br = br
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ValidatesTags 返回是否校验记录标签
func (d *Decoder) ValidatesTags() bool {
	return d.validateTags
}

// MaxFieldSize 返回单个字段的最大长度
func (d *Decoder) MaxFieldSize() int {
	return d.maxFieldSize
}

// ReadByte 实现 io.ByteReader
func (d *Decoder) ReadByte() (byte, error) {
	if d.br != nil {
		return d.br.ReadByte()
	}
	if _, err := io.ReadFull(d.r, d.one[:]); err != nil {
		return 0, err
	}
	return d.one[0], nil
}

// ReadTag 读取记录标签
//
// 流在标签之前干净结束时返回 io.EOF（不包装），便于调用方循环读取记录。
func (d *Decoder) ReadTag() (Tag, error) {
	v, err := varint.ReadUvarint(d)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, d.varintErr("tag", err)
	}
	return Tag(v), nil
}

// ReadUvarint 读取无符号整数
func (d *Decoder) ReadUvarint() (uint64, error) {
	v, err := varint.ReadUvarint(d)
	if err != nil {
		return 0, d.varintErr("uvarint", err)
	}
	return v, nil
}

// ReadBool 读取布尔值
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadByte()
	if err != nil {
		return false, d.readErr("bool", err)
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, decodeErr("bool", fmt.Errorf("%w: 0x%02x", ErrInvalidBool, b))
	}
}

// ReadBytes 读取长度前缀的字节序列
//
// 空序列返回非 nil 的空切片。
func (d *Decoder) ReadBytes() ([]byte, error) {
	return d.readBytes("bytes")
}

// ReadString 读取长度前缀的字符串
func (d *Decoder) ReadString() (string, error) {
	b, err := d.readBytes("string")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadFixed 读取定长字节字段到 dst
//
// 线上长度与 len(dst) 不一致时返回包装 *SizeMismatchError 的 *DecodeError，
// 此时字段内容已被消费，dst 保持不变。
func (d *Decoder) ReadFixed(dst []byte) error {
	b, err := d.readBytes("fixed")
	if err != nil {
		return err
	}
	if err := CopyExact(dst, b); err != nil {
		return decodeErr("fixed", err)
	}
	return nil
}

func (d *Decoder) readBytes(op string) ([]byte, error) {
	n, err := varint.ReadUvarint(d)
	if err != nil {
		return nil, d.varintErr(op, err)
	}
	if n > uint64(d.maxFieldSize) {
		return nil, decodeErr(op, fmt.Errorf("%w: %d > %d", ErrFieldTooLarge, n, d.maxFieldSize))
	}
	buf := make([]byte, int(n))
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, d.readErr(op, err)
	}
	return buf, nil
}

// varintErr 区分格式错误、截断和底层读取失败
func (d *Decoder) varintErr(op string, err error) error {
	switch {
	case errors.Is(err, varint.ErrOverflow), errors.Is(err, varint.ErrNotMinimal), errors.Is(err, varint.ErrUnderflow):
		return decodeErr(op, fmt.Errorf("%w: %v", ErrVarint, err))
	default:
		return d.readErr(op, err)
	}
}

// readErr 流结束视为截断，其他错误来自底层 Reader
func (d *Decoder) readErr(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return decodeErr(op, ErrTruncated)
	}
	return fmt.Errorf("wire: read %s: %w", op, err)
}
