// Package wire 提供带模式标签的二进制记录编解码
//
// 每条结构化记录在网络上的格式为：
//
//	<tag uvarint><字段元组>
//
// 标签在任何字段之前写入，解码时总是先读取标签。字段元组由记录类型自己定义，
// 使用 Encoder/Decoder 提供的基础类型读写：
//   - 无符号整数：无符号 LEB128 varint（最小编码）
//   - 字节序列/字符串：varint 长度 + 内容
//   - 布尔/可选值存在标记：单字节 0x00 / 0x01
//   - 定长字节：varint 长度（必须等于期望宽度）+ 内容
//
// 解码失败一律返回类型化错误（*DecodeError 包装具体原因），不会 panic。
//
// 使用示例：
//
//	data, err := wire.Marshal(&name)
//	var out types.Name
//	err = wire.Unmarshal(data, &out)
package wire
