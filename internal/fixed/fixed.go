package fixed

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"kernel/internal/errs"
)

// NoPointers 检查 T 是否为无指针类型；块可能位于 Go 堆之外，GC 看不到其中的指针。
func NoPointers[T any]() error {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Errorf("%w: interface type", errs.ErrPointerType)
	}
	if err := typeNoPointers(t); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPointerType, err)
	}
	return nil
}

func typeNoPointers(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return nil
	case reflect.Array:
		return typeNoPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if err := typeNoPointers(t.Field(i).Type); err != nil {
				return fmt.Errorf("field %s: %w", t.Field(i).Name, err)
			}
		}
		return nil
	case reflect.String, reflect.Slice, reflect.Map, reflect.Pointer,
		reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Errorf("type %s contains pointer-like data", t.String())
	default:
		return fmt.Errorf("unsupported kind %s (%s)", t.Kind(), t.String())
	}
}

// SizeOf 返回 n 个 T 占用的字节数；n<=0、T 为零大小或溢出时 ok=false。
func SizeOf[T any](n int) (size int, ok bool) {
	var zero T
	elem := unsafe.Sizeof(zero)
	if n <= 0 || elem == 0 {
		return 0, false
	}
	if uintptr(n) > uintptr(math.MaxInt)/elem {
		return 0, false
	}
	return n * int(elem), true
}

// View 把 b 的前 n 个元素解释为 []T，b 必须按 T 对齐且足够长。
func View[T any](b []byte, n int) []T {
	if len(b) == 0 || n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}
