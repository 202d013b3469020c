package heap

import "sync/atomic"

// Stats 进程级分配统计。
type Stats struct {
	Allocs      int64 // 累计分配次数
	Frees       int64 // 累计释放次数
	LiveBlocks  int64 // 未释放的块数
	LiveBytes   int64 // 未释放块的请求字节数
	MappedBytes int64 // 未释放的 mmap 字节数（按页）
}

var (
	allocs      atomic.Int64
	frees       atomic.Int64
	liveBlocks  atomic.Int64
	liveBytes   atomic.Int64
	mappedBytes atomic.Int64
)

func track(b *Block) {
	allocs.Add(1)
	liveBlocks.Add(1)
	liveBytes.Add(int64(b.Len()))
	if b.Mapped() {
		mappedBytes.Add(int64(len(b.raw)))
	}
}

func untrack(b *Block) {
	frees.Add(1)
	liveBlocks.Add(-1)
	liveBytes.Add(-int64(b.Len()))
	if b.Mapped() {
		mappedBytes.Add(-int64(len(b.raw)))
	}
}

// Snapshot 返回当前统计。
func Snapshot() Stats {
	return Stats{
		Allocs:      allocs.Load(),
		Frees:       frees.Load(),
		LiveBlocks:  liveBlocks.Load(),
		LiveBytes:   liveBytes.Load(),
		MappedBytes: mappedBytes.Load(),
	}
}
