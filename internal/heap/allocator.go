package heap

import (
	"errors"

	"kernel/consts"
	"kernel/internal/errs"
	"kernel/internal/mmap"
)

// Freer 释放由自己分配或登记的块。
type Freer interface {
	Free(b *Block) error
}

// Allocator 块分配器：mmap 匿名映射或 Go 堆。
type Allocator interface {
	Alloc(n int) (*Block, error)
	Freer
}

var (
	mapped = &mapAllocator{}
	goHeap = &goAllocator{}
)

// Alloc 分配 n 字节的块：小块走 Go 堆，大块走 mmap，平台不支持 mmap 时回退 Go 堆。
func Alloc(n int) (*Block, error) {
	if n <= 0 {
		return nil, errs.ErrBadArgument
	}
	if n < consts.MapThreshold {
		return goHeap.Alloc(n)
	}
	b, err := mapped.Alloc(n)
	if errors.Is(err, mmap.ErrNotSupported) {
		return goHeap.Alloc(n)
	}
	return b, err
}

// Free 释放块；nil 或已释放的块返回 errs.ErrReleased。
func Free(b *Block) error {
	if b == nil || b.from == nil {
		return errs.ErrReleased
	}
	return b.from.Free(b)
}
