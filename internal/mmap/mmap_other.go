//go:build !unix

package mmap

import "kernel/consts"

func MapAnon(size int) ([]byte, error) {
	return nil, ErrNotSupported
}

func Unmap(data []byte) error {
	return nil
}

func PageSize() int {
	return consts.PageSize
}

func IsNoMemory(err error) bool {
	return false
}
