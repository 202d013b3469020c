package heap

import (
	"kernel/consts"
	"kernel/internal/mmap"
)

var pageSize = mmap.PageSize()

// SizeClass 把 n 向上取整到 align 的倍数；align 须为 2 的幂。
func SizeClass(n, align int) int {
	if n <= 0 {
		return 0
	}
	return (n + align - 1) &^ (align - 1)
}

// HeapClass Go 堆块的档位。
func HeapClass(n int) int { return SizeClass(n, consts.Align) }

// PageClass mmap 块的档位。
func PageClass(n int) int { return SizeClass(n, pageSize) }
