package heap

import "kernel/internal/errs"

// typedAllocator 登记调用方在 Go 堆上创建的含指针切片，只负责统计与失效。
type typedAllocator struct{}

var typed = &typedAllocator{}

// Adopt 把 obj（size 字节）登记为块，释放时丢弃引用交给 GC。
func Adopt(obj any, size int) (*Block, error) {
	if obj == nil || size <= 0 {
		return nil, errs.ErrBadArgument
	}
	b := &Block{obj: obj, size: size, from: typed}
	track(b)
	return b, nil
}

func (a *typedAllocator) Free(b *Block) error {
	if b.obj == nil {
		return errs.ErrReleased
	}
	untrack(b)
	b.reset()
	return nil
}
