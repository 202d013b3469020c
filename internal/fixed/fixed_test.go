package fixed

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"kernel/internal/errs"
)

type plain struct {
	ID   uint64
	HP   uint32
	Name [8]byte
}

type withString struct {
	ID   uint64
	Name string
}

func TestNoPointers(t *testing.T) {
	assert.NoError(t, NoPointers[uint8]())
	assert.NoError(t, NoPointers[plain]())
	assert.NoError(t, NoPointers[[4]complex128]())

	assert.ErrorIs(t, NoPointers[withString](), errs.ErrPointerType)
	assert.ErrorIs(t, NoPointers[*plain](), errs.ErrPointerType)
	assert.ErrorIs(t, NoPointers[[]byte](), errs.ErrPointerType)
	assert.ErrorIs(t, NoPointers[any](), errs.ErrPointerType)
}

func TestSizeOf(t *testing.T) {
	var testCases = []struct {
		description string
		n           int
		expectSize  int
		expectOK    bool
	}{
		{description: "single", n: 1, expectSize: int(unsafe.Sizeof(plain{})), expectOK: true},
		{description: "many", n: 10, expectSize: 10 * int(unsafe.Sizeof(plain{})), expectOK: true},
		{description: "zero count", n: 0},
		{description: "negative count", n: -1},
		{description: "overflow", n: math.MaxInt / 2},
	}
	for _, tc := range testCases {
		size, ok := SizeOf[plain](tc.n)
		assert.Equal(t, tc.expectOK, ok, tc.description)
		assert.Equal(t, tc.expectSize, size, tc.description)
	}
	_, ok := SizeOf[struct{}](4)
	assert.False(t, ok, "zero-size type")
}

func TestView(t *testing.T) {
	keep := make([]uint64, 4)
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&keep[0])), 32)
	items := View[uint32](raw, 8)
	assert.Len(t, items, 8)
	items[1] = uint32(0xAABBCCDD)
	assert.Equal(t, uint32(0xAABBCCDD), *(*uint32)(unsafe.Pointer(&raw[4])))

	assert.Nil(t, View[uint32](nil, 1))
	assert.Nil(t, View[uint32](raw, 0))
}
