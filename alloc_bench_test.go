package kernel

import (
	"math/rand"
	"testing"

	"kernel/consts"
)

func BenchmarkAllocSmall(b *testing.B) {
	for i := 0; i < b.N; i++ {
		blk := Alloc[uint64](16)
		blk.Release()
	}
}

func BenchmarkAllocMapped(b *testing.B) {
	n := consts.MapThreshold / 8
	for i := 0; i < b.N; i++ {
		blk := Alloc[uint64](n)
		blk.Release()
	}
}

func BenchmarkAllocMixParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		r := rand.New(rand.NewSource(1)) // 每个 goroutine 自己的随机源
		for pb.Next() {
			n := 1 + r.Intn(consts.MapThreshold/4)
			if r.Intn(100) < 10 { // 10% 大块
				n *= 8
			}
			blk := Alloc[uint32](n)
			blk.Release()
		}
	})
}

func BenchmarkNow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Now()
	}
}
