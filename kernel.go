// Package kernel 提供进程级的内存与时间原语：分配、释放、读取当前时间、休眠。
package kernel

import (
	"kernel/internal/errs"
	"kernel/internal/heap"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrNoMemory    = errs.ErrNoMemory
	ErrBadArgument = errs.ErrBadArgument
	ErrPointerType = errs.ErrPointerType
	ErrReleased    = errs.ErrReleased
)

// MemStats 进程级分配统计，用于核对泄漏。
type MemStats = heap.Stats

// Stats 返回当前分配统计。
func Stats() MemStats {
	return heap.Snapshot()
}
