package consts

// Heap Const
const (
	Align        = 16       // Go 堆回退块的对齐档位
	PageSize     = 4096     // 取不到系统页大小时的默认值
	MapThreshold = 64 << 10 // 不小于该值的块走 mmap
)

// Clock Const
const (
	MaxSleep = 255 // Sleep 参数上限（uint8）
)
