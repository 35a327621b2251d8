package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/dep2p/go-dep2p-routing/config"
	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// Codec 编解码入口
//
// 持有注册表和编解码配置，所有解码器都使用同一组选项。并发安全。
type Codec struct {
	reg *wire.Registry
	cfg config.WireConfig
}

// New 创建编解码入口
func New(reg *wire.Registry, cfg config.WireConfig) *Codec {
	return &Codec{reg: reg, cfg: cfg}
}

// Registry 返回注册表
func (c *Codec) Registry() *wire.Registry {
	return c.reg
}

// Config 返回编解码配置
func (c *Codec) Config() config.WireConfig {
	return c.cfg
}

// NewDecoder 创建使用当前配置的解码器
func (c *Codec) NewDecoder(r io.Reader) *wire.Decoder {
	return wire.NewDecoder(r, c.cfg.DecoderOptions()...)
}

// Encode 编码一条记录
func (c *Codec) Encode(rec wire.Record) ([]byte, error) {
	return wire.Marshal(rec)
}

// DecodeInto 把 data 解码到指定记录
func (c *Codec) DecodeInto(data []byte, rec wire.Record) error {
	return wire.Unmarshal(data, rec, c.cfg.DecoderOptions()...)
}

// Decode 按标签解码一条已登记的记录
//
// data 必须恰好包含一条记录；空输入视为截断。
func (c *Codec) Decode(data []byte) (wire.Record, error) {
	r := bytes.NewReader(data)
	rec, err := c.reg.DecodeAny(c.NewDecoder(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &wire.DecodeError{Op: "record", Err: wire.ErrTruncated}
		}
		return nil, err
	}
	if r.Len() != 0 {
		return nil, &wire.DecodeError{Op: "record", Err: wire.ErrTrailingData}
	}
	return rec, nil
}

// DecodeStream 依次解码流中的记录并交给 fn
//
// 流干净结束时返回 nil；fn 返回错误时停止并原样返回。
func (c *Codec) DecodeStream(r io.Reader, fn func(wire.Record) error) error {
	dec := c.NewDecoder(r)
	for {
		rec, err := c.reg.DecodeAny(dec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}
