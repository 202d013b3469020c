//go:build unix

package heap

import (
	"errors"
	"strconv"
	"testing"

	"golang.org/x/sys/unix"

	"kernel/internal/errs"
)

func TestMapErrorTagging(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs a 64-bit address space")
	}
	before := Snapshot()
	_, err := mapped.Alloc(1 << (strconv.IntSize - 2))
	if !errors.Is(err, errs.ErrNoMemory) || !errors.Is(err, unix.ENOMEM) {
		t.Errorf("huge mmap: %v", err)
	}

	// 长度为 0 的映射被内核以 EINVAL 拒绝，不是内存不足。
	_, err = mapped.Alloc(0)
	if err == nil {
		t.Fatal("zero-length mmap should fail")
	}
	if errors.Is(err, errs.ErrNoMemory) {
		t.Errorf("EINVAL tagged as out of memory: %v", err)
	}
	if !errors.Is(err, unix.EINVAL) {
		t.Errorf("syscall error not wrapped: %v", err)
	}
	if after := Snapshot(); after.LiveBlocks != before.LiveBlocks {
		t.Errorf("failed mmap changed LiveBlocks: %d -> %d", before.LiveBlocks, after.LiveBlocks)
	}
}
