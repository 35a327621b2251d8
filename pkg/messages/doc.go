// Package messages 定义路由层的响应消息
//
// PutDataResponse 是存储请求的回复：被存储数据的标识符，加上
// 成功（存储的载荷）或失败（ResponseError）之一。
//
// 线上格式：
//
//	<TagPutDataResponse>
//	  <Name 记录>
//	  <payload bytes>          失败时为空占位
//	  <present bool>[<ResponseError 记录>]
//
// 解码时，错误存在即为失败，载荷占位被丢弃。
package messages
