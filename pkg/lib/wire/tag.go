package wire

import "strconv"

// Tag 记录模式标签
//
// 每种记录类型占用一个唯一的标签。新的记录类型必须从同一空间分配未使用的标签，
// 通过 Registry 注册可以检测冲突。
type Tag uint64

// 核心保留标签
const (
	// TagName 标识符（Name）记录
	TagName Tag = 5483000

	// TagPutDataResponse 存储数据响应记录
	TagPutDataResponse Tag = 5483001

	// TagResponseError 响应错误记录
	TagResponseError Tag = 5483100
)

// String 返回标签的字符串表示
func (t Tag) String() string {
	switch t {
	case TagName:
		return "name(" + strconv.FormatUint(uint64(t), 10) + ")"
	case TagPutDataResponse:
		return "put-data-response(" + strconv.FormatUint(uint64(t), 10) + ")"
	case TagResponseError:
		return "response-error(" + strconv.FormatUint(uint64(t), 10) + ")"
	default:
		return strconv.FormatUint(uint64(t), 10)
	}
}

// IsReserved 检查标签是否为核心保留标签
func (t Tag) IsReserved() bool {
	return t == TagName || t == TagPutDataResponse || t == TagResponseError
}
