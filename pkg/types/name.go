package types

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"lukechampine.com/blake3"

	"github.com/dep2p/go-dep2p-routing/pkg/lib/wire"
)

// ============================================================================
//                              Name - 网络地址
// ============================================================================

// NameLen Name 的固定字节长度
const NameLen = 64

// Name 覆盖网络地址空间中的位置
//
// 定长 64 字节，按字节比较相等。全零值是保留的哨兵地址（EmptyName），
// 不是有效地址。Name 是纯值类型，赋值即复制。
//
// 外部表示格式：
//   - String(): Base58 编码
//   - ShortString(): Base58 前 8 个字符（日志）
//   - Hex(): 十六进制（调试）
type Name [NameLen]byte

// EmptyName 保留的全零地址
var EmptyName Name

// NewName 从 64 字节数组创建 Name
func NewName(b [NameLen]byte) Name {
	return Name(b)
}

// NameFromBytes 从字节切片创建 Name
//
// 长度必须恰好为 NameLen，否则返回包装 *wire.SizeMismatchError 的错误。
func NameFromBytes(b []byte) (Name, error) {
	var n Name
	if err := wire.CopyExact(n[:], b); err != nil {
		return EmptyName, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}
	return n, nil
}

// GenerateRandomName 生成随机 Name
//
// 64 个字节均取自进程级安全随机源（crypto/rand）。
func GenerateRandomName() Name {
	n, err := GenerateRandomNameFrom(rand.Reader)
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return n
}

// GenerateRandomNameFrom 从指定随机源生成 Name
func GenerateRandomNameFrom(r io.Reader) (Name, error) {
	var n Name
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return EmptyName, fmt.Errorf("generate name: %w", err)
	}
	return n, nil
}

// HashName 计算数据的内容地址
//
// 使用 BLAKE3 的 512 位输出，宽度与 Name 一致。
func HashName(data []byte) Name {
	return Name(blake3.Sum512(data))
}

// ParseName 从 Base58 字符串解析 Name
func ParseName(s string) (Name, error) {
	if s == "" {
		return EmptyName, ErrInvalidName
	}
	b, err := base58.Decode(s)
	if err != nil {
		return EmptyName, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return NameFromBytes(b)
}

// Bytes 返回底层字节的副本
func (n Name) Bytes() []byte {
	b := make([]byte, NameLen)
	copy(b, n[:])
	return b
}

// Array 返回底层字节数组
func (n Name) Array() [NameLen]byte {
	return n
}

// IsValid 检查 Name 是否有效（非全零）
func (n Name) IsValid() bool {
	for _, b := range n {
		if b != 0 {
			return true
		}
	}
	return false
}

// IsEmpty 检查 Name 是否为保留的全零值
func (n Name) IsEmpty() bool {
	return n == EmptyName
}

// Equal 比较两个 Name 是否相等
func (n Name) Equal(other Name) bool {
	return n == other
}

// String 返回 Base58 表示，EmptyName 返回空字符串
func (n Name) String() string {
	if n.IsEmpty() {
		return ""
	}
	return base58.Encode(n[:])
}

// ShortString 返回 Base58 前 8 个字符
func (n Name) ShortString() string {
	s := n.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Hex 返回十六进制表示
func (n Name) Hex() string {
	return hex.EncodeToString(n[:])
}

// GoString 实现 fmt.GoStringer，便于测试失败时阅读
func (n Name) GoString() string {
	return "types.Name(" + n.ShortString() + ")"
}
