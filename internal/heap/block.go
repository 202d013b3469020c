package heap

// Block 连续内存块，由分配它的 Allocator 释放。
type Block struct {
	data []byte   // 调用方可见的 n 字节，含指针的块为 nil
	raw  []byte   // mmap 整段，Go 堆块为 nil
	keep []uint64 // Go 堆块的底层存储，保证 8 字节对齐
	obj  any      // 含指针的 []T，由 GC 扫描
	size int
	from Freer
}

// Bytes 返回块内容，释放后或含指针的块为 nil。
func (b *Block) Bytes() []byte { return b.data }

// Object 返回 Adopt 登记的对象，其他块为 nil。
func (b *Block) Object() any { return b.obj }

// Len 返回请求的字节数。
func (b *Block) Len() int { return b.size }

// Class 返回实际占用的档位大小。
func (b *Block) Class() int {
	switch {
	case b.raw != nil:
		return len(b.raw)
	case b.keep != nil:
		return len(b.keep) * 8
	}
	return b.size
}

// Mapped 块是否来自 mmap。
func (b *Block) Mapped() bool { return b.raw != nil }

func (b *Block) reset() {
	b.data = nil
	b.raw = nil
	b.keep = nil
	b.obj = nil
	b.size = 0
	b.from = nil
}
