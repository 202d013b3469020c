package heap

import (
	"fmt"

	"kernel/internal/errs"
	"kernel/internal/mmap"
)

// mapAllocator 按页映射匿名内存，释放时 munmap 归还给内核。
type mapAllocator struct{}

func (a *mapAllocator) Alloc(n int) (*Block, error) {
	c := PageClass(n)
	if c < n {
		return nil, errs.ErrBadArgument
	}
	raw, err := mmap.MapAnon(c)
	if err != nil {
		if err == mmap.ErrNotSupported {
			return nil, err
		}
		if mmap.IsNoMemory(err) {
			return nil, fmt.Errorf("%w: mmap %d bytes: %w", errs.ErrNoMemory, c, err)
		}
		return nil, fmt.Errorf("mmap %d bytes: %w", c, err)
	}
	b := &Block{data: raw[:n:n], raw: raw, size: n, from: a}
	track(b)
	return b, nil
}

func (a *mapAllocator) Free(b *Block) error {
	if b.raw == nil {
		return errs.ErrReleased
	}
	untrack(b)
	raw := b.raw
	b.reset()
	if err := mmap.Unmap(raw); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
