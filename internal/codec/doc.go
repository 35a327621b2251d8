// Package codec 组装线上编解码组件
//
// 通过 Fx 模块提供:
//   - *wire.Registry: 已登记核心记录类型和协作方记录类型的注册表
//   - *Codec: 按配置构建解码器的编解码入口
//   - config.WireConfig: 生效的编解码配置
//
// 协作方通过 RecordKind 把自己的记录类型加入 "wire_records" 值组，
// 模块构建注册表时统一登记，标签冲突会让应用启动失败。
package codec
