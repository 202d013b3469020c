package kernel

import (
	"context"

	"kernel/internal/clock"
)

// Time Unix 纪元以来的秒数。
type Time int64

// NoTime 时钟读取失败时返回的哨兵值。
const NoTime Time = 0

// Source 可注入的时钟源。
type Source = clock.Source

// SourceFunc 函数适配为 Source。
type SourceFunc = clock.SourceFunc

// Now 返回当前秒级时间，读取失败返回 NoTime，从不 panic。
func Now() Time {
	return NowFrom(clock.System)
}

// NowFrom 同 Now，从 s 读取。
func NowFrom(s Source) Time {
	return Time(clock.Coarse(s))
}

// Sleep 阻塞当前 goroutine seconds 秒后返回，不可取消。
func Sleep(seconds uint8) {
	clock.Sleep(seconds)
}

// SleepContext 同 Sleep，ctx 结束时提前返回 ctx.Err()。
func SleepContext(ctx context.Context, seconds uint8) error {
	return clock.SleepContext(ctx, seconds)
}
