// Package types 定义 DeP2P 路由核心的基础类型
//
// 这是最底层的值类型包，只依赖 pkg/lib/wire 的编解码契约。
// 所有类型都是纯值类型，构造后不可变，可在 goroutine 间只读共享。
//
// # 文件组织
//
//   - name.go      - Name（64 字节网络地址）、随机生成、内容哈希、Base58 表示
//   - distance.go  - XOR 距离度量：CloserToTarget、CompareDistance、CommonPrefixLen
//   - name_wire.go - Name 的线上记录编解码（标签 wire.TagName）
//   - errors.go    - 公共错误定义
//
// # 距离度量
//
// CloserToTarget(a, b, target) 按字节比较 a^target 与 b^target，定义了按 target
// 的严格反对称序。一个 Name 到自身的距离为零，因此对于任意 b != a，
// CloserToTarget(a, b, a) 恒为 true。
package types
