package mmap

import "errors"

// ErrNotSupported 当前平台或内核不提供匿名映射，调用方应回退到 Go 堆。
var ErrNotSupported = errors.New("mmap not supported on this platform")
