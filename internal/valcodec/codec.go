// Package valcodec marshals Go values to and from the wire shape a registry
// backend stores: a raw byte payload plus a type tag. String payloads use
// UTF-16LE with the usual null terminators, integers are fixed-width with the
// endianness the tag names.
package valcodec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

var (
	// ErrShape indicates a Go value that cannot be encoded as the given tag.
	ErrShape = errors.New("valcodec: value shape does not match type tag")

	// ErrTruncated indicates a payload too short for its type tag.
	ErrTruncated = errors.New("valcodec: truncated value data")

	// ErrOddLength indicates a UTF-16 payload with an odd byte count.
	ErrOddLength = errors.New("valcodec: utf16 data has odd length")
)

var (
	utf16Enc = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	utf16Dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
)

// Encode converts value to the byte payload for the given tag.
func Encode(value any, typ types.RegType) ([]byte, error) {
	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %T as %s", ErrShape, value, typ)
		}
		return encodeString(s)

	case types.REG_MULTI_SZ:
		ss, ok := value.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: %T as %s", ErrShape, value, typ)
		}
		return encodeMultiString(ss)

	case types.REG_DWORD, types.REG_DWORD_BE:
		u, err := intPayload(value, 32)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 4)
		if typ == types.REG_DWORD_BE {
			binary.BigEndian.PutUint32(buf, uint32(u))
		} else {
			binary.LittleEndian.PutUint32(buf, uint32(u))
		}
		return buf, nil

	case types.REG_QWORD:
		u, err := intPayload(value, 64)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, u)
		return buf, nil

	default:
		// REG_BINARY, REG_NONE and the resource-descriptor tags carry raw
		// bytes. nil means an absent payload.
		switch v := value.(type) {
		case nil:
			return nil, nil
		case []byte:
			out := make([]byte, len(v))
			copy(out, v)
			return out, nil
		}
		return nil, fmt.Errorf("%w: %T as %s", ErrShape, value, typ)
	}
}

// Decode converts a raw payload back into a Go value according to its tag:
// strings for the *_SZ tags, []string for REG_MULTI_SZ, uint32/uint64 for the
// integer tags, nil for an absent REG_NONE and []byte for everything else.
func Decode(data []byte, typ types.RegType) (any, error) {
	switch typ {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		return decodeString(data)

	case types.REG_MULTI_SZ:
		return decodeMultiString(data)

	case types.REG_DWORD:
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: %d bytes as %s", ErrTruncated, len(data), typ)
		}
		return binary.LittleEndian.Uint32(data), nil

	case types.REG_DWORD_BE:
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: %d bytes as %s", ErrTruncated, len(data), typ)
		}
		return binary.BigEndian.Uint32(data), nil

	case types.REG_QWORD:
		if len(data) < 8 {
			return nil, fmt.Errorf("%w: %d bytes as %s", ErrTruncated, len(data), typ)
		}
		return binary.LittleEndian.Uint64(data), nil

	case types.REG_NONE:
		if len(data) == 0 {
			return nil, nil
		}
		fallthrough

	default:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
}

func encodeString(s string) ([]byte, error) {
	b, err := utf16Enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("valcodec: encode utf16: %w", err)
	}
	return append(b, 0, 0), nil
}

func decodeString(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", ErrOddLength
	}
	// Trim the null terminator if present.
	if n := len(data); n >= 2 && data[n-2] == 0 && data[n-1] == 0 {
		data = data[:n-2]
	}
	b, err := utf16Dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("valcodec: decode utf16: %w", err)
	}
	return string(b), nil
}

func encodeMultiString(ss []string) ([]byte, error) {
	var out []byte
	for _, s := range ss {
		b, err := encodeString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	// List terminator: one empty string.
	return append(out, 0, 0), nil
}

func decodeMultiString(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	var (
		out   []string
		start = 0
	)
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] != 0 || data[i+1] != 0 {
			continue
		}
		if i == start {
			// Empty element terminates the list.
			return out, nil
		}
		s, err := decodeString(data[start:i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
		start = i + 2
	}
	// Missing final terminator; tolerate a trailing element.
	if start < len(data) {
		s, err := decodeString(data[start:])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func intPayload(value any, bits int) (uint64, error) {
	var u uint64
	switch v := value.(type) {
	case int:
		u = uint64(v)
	case int8:
		u = uint64(v)
	case int16:
		u = uint64(v)
	case int32:
		u = uint64(v)
	case int64:
		u = uint64(v)
	case uint:
		u = uint64(v)
	case uint8:
		u = uint64(v)
	case uint16:
		u = uint64(v)
	case uint32:
		u = uint64(v)
	case uint64:
		u = v
	default:
		return 0, fmt.Errorf("%w: %T as %d-bit integer", ErrShape, value, bits)
	}
	if bits == 32 {
		// Two's-complement for negatives, so -1 stores as 0xFFFFFFFF.
		if i := int64(u); i < -0x8000_0000 || i > 0xffff_ffff {
			return 0, fmt.Errorf("%w: %d does not fit 32 bits", ErrShape, i)
		}
		u &= 0xffff_ffff
	}
	return u, nil
}
