//go:build !unix

package kernel

const mmapSupported = false
