package types

import (
	"fmt"
	"math"
)

type hintKind int

const (
	hintNone hintKind = iota
	hintName
	hintCode
)

// Hint carries an optional explicit type for a value write. The zero value
// (NoHint) requests inference from the value's shape.
type Hint struct {
	kind hintKind
	name string
	code RegType
}

// NoHint requests type inference from the value alone.
func NoHint() Hint { return Hint{} }

// HintName names a type tag symbolically, e.g. "QWORD" or "REG_BINARY".
func HintName(name string) Hint { return Hint{kind: hintName, name: name} }

// HintCode uses a raw tag verbatim, legal or not.
func HintCode(code RegType) Hint { return Hint{kind: hintCode, code: code} }

// Infer maps a value and an optional hint to a concrete type tag:
//
//   - no hint: a string infers REG_SZ, nil infers REG_NONE, []string infers
//     REG_MULTI_SZ, and an integer infers REG_DWORD when it fits the exclusive
//     range (-2^31, 2^32-1) or REG_QWORD when it fits the 64-bit range;
//   - HintCode is returned verbatim;
//   - HintName must resolve through TypeByName.
//
// Anything else fails with ErrInferType. Note that []byte does not infer
// REG_BINARY; a binary write needs an explicit hint.
func Infer(hint Hint, value any) (RegType, error) {
	if hint.kind == hintNone {
		switch v := value.(type) {
		case nil:
			return REG_NONE, nil
		case string:
			return REG_SZ, nil
		case []string:
			return REG_MULTI_SZ, nil
		case int, int8, int16, int32, int64:
			return inferSigned(toInt64(v))
		case uint, uint8, uint16, uint32, uint64, uintptr:
			return inferUnsigned(toUint64(v))
		}
		return 0, fmt.Errorf("%w: %T", ErrInferType, value)
	}

	switch hint.kind {
	case hintCode:
		return hint.code, nil
	case hintName:
		return TypeByName(hint.name)
	}
	return 0, fmt.Errorf("%w: %T", ErrInferType, value)
}

// Both range checks are exclusive on both ends, so math.MinInt32 itself is
// already a QWORD and math.MinInt64 / math.MaxUint64 fail outright.

func inferSigned(v int64) (RegType, error) {
	if -0x8000_0000 < v && v < 0xffff_ffff {
		return REG_DWORD, nil
	}
	if v > math.MinInt64 {
		return REG_QWORD, nil
	}
	return 0, fmt.Errorf("%w: integer %d out of range", ErrInferType, v)
}

func inferUnsigned(v uint64) (RegType, error) {
	if v < 0xffff_ffff {
		return REG_DWORD, nil
	}
	if v < math.MaxUint64 {
		return REG_QWORD, nil
	}
	return 0, fmt.Errorf("%w: integer %d out of range", ErrInferType, v)
}

func toInt64(v any) int64 {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}
	panic("unreachable")
}

func toUint64(v any) uint64 {
	switch v := v.(type) {
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	}
	panic("unreachable")
}
