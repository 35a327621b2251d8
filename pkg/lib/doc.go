// Package lib 包含基础设施工具库
//
// 本目录包含与路由语义无关的通用工具库：
//
//   - log: 日志封装
//   - wire: 带标签的线上记录编解码
//
// # 与 pkg/ 其他目录的关系
//
//   - types/: 标识符与距离度量
//   - routing/: 路由错误分类
//   - messages/: 响应消息
//   - lib/: 基础设施工具库（本目录）
package lib
