// Package routing 定义路由层的三级错误模型
//
// 错误分为三级，包装方向单向不可逆：
//
//	ResponseError ──► InterfaceError ──► Error
//	      └───────────────────────────────┘
//
//   - ResponseError：远端操作结果（无数据、无效请求、存储失败）
//   - InterfaceError：边界级失败（显式中止，或包装 ResponseError）
//   - Error：路由引擎的总错误类型（协议故障 + 包装下级失败）
//
// 每个错误值提供三个维度：
//   - Description()：简短且稳定的机器可读描述（诊断/日志）
//   - Cause()：嵌套原因，仅包装型变体非 nil；Unwrap() 返回同一值
//   - Error()：面向用户/日志的显示字符串
//
// 级别转换使用显式构造函数（ToInterface、ToRouting、Wrap*），在函数边界需要
// 自动提升时使用 From。所有错误值构造后不可变，可在 goroutine 间共享。
package routing
