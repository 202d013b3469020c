package clock

import (
	"context"
	"time"
)

// Source 时钟源，返回 Unix 纪元以来的秒数。
type Source interface {
	Now() (sec int64, err error)
}

// SourceFunc 函数适配为 Source。
type SourceFunc func() (int64, error)

func (f SourceFunc) Now() (int64, error) { return f() }

// System 系统实时时钟。
var System Source = systemSource{}

// Coarse 读取 s 的秒级时间；读失败、结果为 0 或 s panic 时返回 0，从不向外抛出。
func Coarse(s Source) (sec int64) {
	if s == nil {
		return 0
	}
	defer func() {
		if recover() != nil {
			sec = 0
		}
	}()
	v, err := s.Now()
	if err != nil || v == 0 {
		return 0
	}
	return v
}

// Sleep 阻塞当前 goroutine sec 秒后返回，sec 为 0 时立即返回。
func Sleep(sec uint8) {
	if sec == 0 {
		return
	}
	time.Sleep(time.Duration(sec) * time.Second)
}

// SleepContext 同 Sleep，ctx 先结束时提前返回 ctx.Err()。
func SleepContext(ctx context.Context, sec uint8) error {
	if sec == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(sec) * time.Second)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
