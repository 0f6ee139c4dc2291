package regpath

import "github.com/neko-neko-nyan/regpath/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import
// pkg/regpath.

// Core types.
type (
	RegType = types.RegType
	Access  = types.Access
	HKey    = types.HKey
	Hint    = types.Hint
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Registry type constants.
const (
	REG_NONE      = types.REG_NONE
	REG_SZ        = types.REG_SZ
	REG_EXPAND_SZ = types.REG_EXPAND_SZ
	REG_BINARY    = types.REG_BINARY
	REG_DWORD     = types.REG_DWORD
	REG_DWORD_LE  = types.REG_DWORD_LE
	REG_DWORD_BE  = types.REG_DWORD_BE
	REG_LINK      = types.REG_LINK
	REG_MULTI_SZ  = types.REG_MULTI_SZ
	REG_QWORD     = types.REG_QWORD
)

// Access mask constants.
const (
	KEY_READ       = types.KEY_READ
	KEY_WRITE      = types.KEY_WRITE
	KEY_EXECUTE    = types.KEY_EXECUTE
	KEY_ALL_ACCESS = types.KEY_ALL_ACCESS
)

// Predefined root keys.
const (
	HKEY_CLASSES_ROOT     = types.HKEY_CLASSES_ROOT
	HKEY_CURRENT_USER     = types.HKEY_CURRENT_USER
	HKEY_LOCAL_MACHINE    = types.HKEY_LOCAL_MACHINE
	HKEY_USERS            = types.HKEY_USERS
	HKEY_PERFORMANCE_DATA = types.HKEY_PERFORMANCE_DATA
	HKEY_CURRENT_CONFIG   = types.HKEY_CURRENT_CONFIG
	HKEY_DYN_DATA         = types.HKEY_DYN_DATA
)

// Error kind constants.
const (
	ErrKindPath         = types.ErrKindPath
	ErrKindNotFound     = types.ErrKindNotFound
	ErrKindPrecondition = types.ErrKindPrecondition
	ErrKindState        = types.ErrKindState
	ErrKindBackend      = types.ErrKindBackend
)

// Common error sentinels.
var (
	ErrNotFound     = types.ErrNotFound
	ErrEmptyPath    = types.ErrEmptyPath
	ErrHostConflict = types.ErrHostConflict
	ErrUnknownHive  = types.ErrUnknownHive
	ErrUnknownType  = types.ErrUnknownType
	ErrInferType    = types.ErrInferType
	ErrExists       = types.ErrExists
	ErrNoParent     = types.ErrNoParent
)

// Type inference helpers.
var (
	NoHint   = types.NoHint
	HintName = types.HintName
	HintCode = types.HintCode
	Infer    = types.Infer
)

// Error classification helpers.
var (
	IsNotFound = types.IsNotFound
	KindOf     = types.KindOf
)
