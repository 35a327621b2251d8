package wire

// CopyExact 将 src 复制到 dst，要求两者长度完全一致
//
// 长度不一致时不修改 dst，返回 *SizeMismatchError。
// 用于把动态长度的字节序列转换为定长数组：
//
//	var id [64]byte
//	if err := wire.CopyExact(id[:], b); err != nil { ... }
func CopyExact(dst, src []byte) error {
	if len(src) != len(dst) {
		return &SizeMismatchError{Expected: len(dst), Actual: len(src)}
	}
	copy(dst, src)
	return nil
}
