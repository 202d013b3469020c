package heap

import (
	"unsafe"

	"kernel/internal/errs"
)

// goAllocator 从 Go 堆分配，释放只是丢弃引用，由 GC 回收。
// 堆耗尽时 runtime 直接终止进程，不会返回错误。
type goAllocator struct{}

func (a *goAllocator) Alloc(n int) (*Block, error) {
	c := HeapClass(n)
	if c < n {
		return nil, errs.ErrBadArgument
	}
	keep := make([]uint64, c/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&keep[0])), c)
	b := &Block{data: data[:n:n], keep: keep, size: n, from: a}
	track(b)
	return b, nil
}

func (a *goAllocator) Free(b *Block) error {
	if b.keep == nil {
		return errs.ErrReleased
	}
	untrack(b)
	b.reset()
	return nil
}
