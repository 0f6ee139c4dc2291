package types

import (
	"fmt"
	"strings"
)

// RegType enumerates registry value type tags.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_QWORD_LE                   RegType = 11 // alias for clarity
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// typeNames maps symbolic names to type tags for HintName lookups.
// Keys are the bare names; TypeByName also strips an optional REG_ prefix.
var typeNames = map[string]RegType{
	"NONE":                       REG_NONE,
	"SZ":                         REG_SZ,
	"EXPAND_SZ":                  REG_EXPAND_SZ,
	"BINARY":                     REG_BINARY,
	"DWORD":                      REG_DWORD,
	"DWORD_LITTLE_ENDIAN":        REG_DWORD_LE,
	"DWORD_BIG_ENDIAN":           REG_DWORD_BE,
	"LINK":                       REG_LINK,
	"MULTI_SZ":                   REG_MULTI_SZ,
	"RESOURCE_LIST":              REG_RESOURCE_LIST,
	"FULL_RESOURCE_DESCRIPTOR":   REG_FULL_RESOURCE_DESCRIPTOR,
	"RESOURCE_REQUIREMENTS_LIST": REG_RESOURCE_REQUIREMENTS_LIST,
	"QWORD":                      REG_QWORD,
	"QWORD_LITTLE_ENDIAN":        REG_QWORD_LE,
}

// TypeByName resolves a symbolic type name such as "SZ" or "REG_DWORD" to its
// tag. Unknown names fail with ErrUnknownType.
func TypeByName(name string) (RegType, error) {
	t, ok := typeNames[strings.TrimPrefix(name, "REG_")]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}
