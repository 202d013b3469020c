//go:build unix

package mmap

import (
	"errors"

	"golang.org/x/sys/unix"
)

// MapAnon 映射 size 字节的匿名私有内存（可读写）。
func MapAnon(size int) ([]byte, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err == unix.ENOSYS {
		return nil, ErrNotSupported
	}
	return data, err
}

// Unmap 解除映射。
func Unmap(data []byte) error {
	return unix.Munmap(data)
}

// PageSize 返回系统页大小。
func PageSize() int {
	return unix.Getpagesize()
}

// IsNoMemory 判断 err 是否为内核拒绝映射（ENOMEM）。
func IsNoMemory(err error) bool {
	return errors.Is(err, unix.ENOMEM)
}
