// SPDX-License-Identifier: MIT

package grid

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Cell is the set of element types a Dense may hold: every Go integer type,
// including named types built on them.
type Cell interface {
	constraints.Integer
}

// DType identifies a grid element type at run time.
type DType int

// Supported element types. Invalid is the zero value.
const (
	Invalid DType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
)

var dtypeNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Int:     "int",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Uint:    "uint",
	Uintptr: "uintptr",
}

// String returns the Go spelling of the type ("uint16", ...).
func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return dtypeNames[Invalid]
	}

	return dtypeNames[d]
}

// Bits returns the element width in bits (0 for Invalid).
// Int, Uint and Uintptr report the width of the running platform.
func (d DType) Bits() int {
	switch d {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	case Int, Uint, Uintptr:
		return 32 << (^uint(0) >> 63)
	default:
		return 0
	}
}

// Signed reports whether the type can hold negative values.
func (d DType) Signed() bool {
	switch d {
	case Int8, Int16, Int32, Int64, Int:
		return true
	default:
		return false
	}
}

// Narrow reports whether the type is an 8- or 16-bit integer.
func (d DType) Narrow() bool {
	switch d {
	case Int8, Int16, Uint8, Uint16:
		return true
	default:
		return false
	}
}

// DTypeOf returns the DType of T, resolving named types to their underlying kind.
func DTypeOf[T Cell]() DType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	default:
		return Invalid
	}
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Cell]() T {
	dt := DTypeOf[T]()
	bits := dt.Bits()
	if dt.Signed() {
		return T(uint64(1)<<(bits-1) - 1)
	}

	return T(^uint64(0) >> (64 - bits))
}
