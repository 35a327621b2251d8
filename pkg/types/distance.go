package types

import "sort"

// ============================================================================
//                              XOR 距离度量
// ============================================================================

// CloserToTarget 判断 a 是否比 b 更接近 target
//
// 从最高位字节（索引 0）开始逐字节比较 a^target 与 b^target，
// 第一个不同的字节决定结果；全部相同返回 false。
// 这是按 target 定义的严格序：同一对 Name 对不同 target 可能顺序不同。
func CloserToTarget(a, b, target Name) bool {
	for i := 0; i < NameLen; i++ {
		da := a[i] ^ target[i]
		db := b[i] ^ target[i]
		if da != db {
			return da < db
		}
	}
	return false
}

// CompareDistance 比较 a 和 b 到 target 的距离
// 返回：
//
//	-1 如果 dist(a, target) < dist(b, target)
//	 0 如果 dist(a, target) == dist(b, target)（即 a == b）
//	 1 如果 dist(a, target) > dist(b, target)
func CompareDistance(a, b, target Name) int {
	switch {
	case CloserToTarget(a, b, target):
		return -1
	case CloserToTarget(b, a, target):
		return 1
	default:
		return 0
	}
}

// XORDistance 计算两个 Name 的 XOR 距离
func XORDistance(a, b Name) Name {
	var d Name
	for i := range d {
		d[i] = a[i] ^ b[i]
	}
	return d
}

// CommonPrefixLen 计算两个 Name 的共同前缀长度（按位计数）
func CommonPrefixLen(a, b Name) int {
	zeroBits := 0
	for i := 0; i < NameLen; i++ {
		x := a[i] ^ b[i]
		if x == 0 {
			zeroBits += 8
			continue
		}
		for mask := byte(0x80); mask > 0 && x&mask == 0; mask >>= 1 {
			zeroBits++
		}
		return zeroBits
	}
	return zeroBits
}

// BucketIndex 计算 remote 应该放入 local 的哪个 K-Bucket
// 返回 K-Bucket 索引（0-511）
func BucketIndex(local, remote Name) int {
	cpl := CommonPrefixLen(local, remote)
	if cpl >= NameLen*8 {
		return NameLen*8 - 1
	}
	return cpl
}

// SortByDistance 按到 target 的距离升序排列（稳定排序，原地修改）
func SortByDistance(names []Name, target Name) {
	sort.SliceStable(names, func(i, j int) bool {
		return CloserToTarget(names[i], names[j], target)
	})
}
