package kernel

import (
	"sync/atomic"

	"kernel/internal/errs"
	"kernel/internal/fixed"
	"kernel/internal/heap"
)

// Block 持有 n 个 T 的连续内存，调用方独占，Release 后失效。
// 无指针的 T 可能位于 mmap 区域；含指针的 T 始终分配在 Go 堆上，不提供字节视图。
type Block[T any] struct {
	b atomic.Pointer[heap.Block]
	n int
}

// AllocErr 分配 n 个 T，失败时返回原因。
func AllocErr[T any](n int) (*Block[T], error) {
	size, ok := fixed.SizeOf[T](n)
	if !ok {
		return nil, errs.ErrBadArgument
	}
	var (
		hb  *heap.Block
		err error
	)
	if fixed.NoPointers[T]() != nil {
		hb, err = heap.Adopt(make([]T, n), size)
	} else {
		hb, err = heap.Alloc(size)
	}
	if err != nil {
		return nil, err
	}
	blk := &Block[T]{n: n}
	blk.b.Store(hb)
	return blk, nil
}

// Alloc 分配 n 个 T，失败返回 nil。内容未定义，不保证清零。
func Alloc[T any](n int) *Block[T] {
	blk, err := AllocErr[T](n)
	if err != nil {
		return nil
	}
	return blk
}

// MustAlloc 同 Alloc，失败时 panic。
func MustAlloc[T any](n int) *Block[T] {
	blk, err := AllocErr[T](n)
	if err != nil {
		panic(err)
	}
	return blk
}

// Free 释放 b：成功返回 (0, true)；b 为 nil 或已释放返回 (0, false)。
func Free[T any](b *Block[T]) (status uint8, ok bool) {
	return b.Release()
}

// Release 见 Free。
func (b *Block[T]) Release() (status uint8, ok bool) {
	if err := b.ReleaseErr(); err == errs.ErrReleased {
		return 0, false
	}
	return 0, true
}

// ReleaseErr 释放 b 并返回底层错误（如 munmap 失败）；nil 或已释放返回 ErrReleased。
// 出错时句柄同样失效。
func (b *Block[T]) ReleaseErr() error {
	if b == nil {
		return errs.ErrReleased
	}
	hb := b.b.Swap(nil)
	if hb == nil {
		return errs.ErrReleased
	}
	return heap.Free(hb)
}

// Len 元素个数，释放后为 0。
func (b *Block[T]) Len() int {
	if b.live() == nil {
		return 0
	}
	return b.n
}

// Size 请求的字节数，释放后为 0。
func (b *Block[T]) Size() int {
	hb := b.live()
	if hb == nil {
		return 0
	}
	return hb.Len()
}

// Bytes 原始字节视图，释放后或 T 含指针时为 nil。
func (b *Block[T]) Bytes() []byte {
	hb := b.live()
	if hb == nil {
		return nil
	}
	return hb.Bytes()
}

// Items 以 []T 访问块，释放后为 nil。
func (b *Block[T]) Items() []T {
	hb := b.live()
	if hb == nil {
		return nil
	}
	if items, ok := hb.Object().([]T); ok {
		return items
	}
	return fixed.View[T](hb.Bytes(), b.n)
}

// Mapped 块是否来自 mmap。
func (b *Block[T]) Mapped() bool {
	hb := b.live()
	return hb != nil && hb.Mapped()
}

func (b *Block[T]) live() *heap.Block {
	if b == nil {
		return nil
	}
	return b.b.Load()
}
