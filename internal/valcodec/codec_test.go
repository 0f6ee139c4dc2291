package valcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		typ   types.RegType
		value any
		want  any // expected decoded shape; nil means same as value
	}{
		{"sz", types.REG_SZ, "hello", nil},
		{"sz empty", types.REG_SZ, "", nil},
		{"sz non-ascii", types.REG_SZ, "пüth ✓", nil},
		{"expand sz", types.REG_EXPAND_SZ, "%SystemRoot%\\system32", nil},
		{"link", types.REG_LINK, "\\Registry\\Machine\\Software", nil},
		{"multi sz", types.REG_MULTI_SZ, []string{"a", "b", "c"}, nil},
		{"multi sz empty", types.REG_MULTI_SZ, []string{}, []string(nil)},
		{"dword", types.REG_DWORD, 5, uint32(5)},
		{"dword negative", types.REG_DWORD, -1, uint32(0xffffffff)},
		{"dword be", types.REG_DWORD_BE, uint32(0x01020304), uint32(0x01020304)},
		{"qword", types.REG_QWORD, int64(1) << 40, uint64(1) << 40},
		{"binary", types.REG_BINARY, []byte{0, 1, 2, 0xff}, nil},
		{"none absent", types.REG_NONE, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.value, tt.typ)
			require.NoError(t, err)

			got, err := Decode(data, tt.typ)
			require.NoError(t, err)

			want := tt.want
			if want == nil {
				want = tt.value
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeStringLayout(t *testing.T) {
	data, err := Encode("ab", types.REG_SZ)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 'b', 0, 0, 0}, data)

	data, err = Encode([]string{"a"}, types.REG_MULTI_SZ)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0, 0, 0, 0, 0}, data)
}

func TestDecodeTolerance(t *testing.T) {
	// Strings without a terminator still decode.
	got, err := Decode([]byte{'h', 0, 'i', 0}, types.REG_SZ)
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	// Multi-strings missing the final empty element still decode.
	got, err = Decode([]byte{'a', 0, 0, 0, 'b', 0}, types.REG_MULTI_SZ)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = Decode([]byte{'x'}, types.REG_SZ)
	assert.ErrorIs(t, err, ErrOddLength)

	_, err = Decode([]byte{1, 2}, types.REG_DWORD)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestEncodeShapeErrors(t *testing.T) {
	_, err := Encode(42, types.REG_SZ)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Encode("nope", types.REG_DWORD)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Encode(int64(1)<<40, types.REG_DWORD)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Encode("nope", types.REG_BINARY)
	assert.ErrorIs(t, err, ErrShape)
}

func TestDecodeRawTags(t *testing.T) {
	// Unknown and resource tags pass bytes through untouched.
	got, err := Decode([]byte{1, 2, 3}, types.REG_RESOURCE_LIST)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	// REG_NONE with a payload keeps the payload.
	got, err = Decode([]byte{9}, types.REG_NONE)
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, got)
}
