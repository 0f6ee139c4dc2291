package types

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindPath         ErrKind = iota // malformed path or unknown symbolic name
	ErrKindNotFound                    // missing key or value
	ErrKindPrecondition                // operation refused before any backend call
	ErrKindState                       // invalid operation for current state (closed handle, deleted key)
	ErrKindBackend                     // any other collaborator failure
)

// Well-known platform error codes carried on Error.Code. Backends use these
// so callers can tell "not found" apart from everything else.
const (
	CodeFileNotFound  uint32 = 2
	CodeAccessDenied  uint32 = 5
	CodeInvalidHandle uint32 = 6
	CodeBadNetPath    uint32 = 53
	CodeAlreadyExists uint32 = 183
	CodeNoMoreItems   uint32 = 259
	CodeKeyDeleted    uint32 = 1018
)

// Error is a typed error with a stable kind, an optional platform error code,
// and an optional underlying cause.
type Error struct {
	Kind ErrKind
	Code uint32 // platform error code, 0 if none
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the path core and backends.
var (
	// ErrNotFound indicates a missing key or value.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Code: CodeFileNotFound, Msg: "key or value not found"}
	// ErrNoMoreItems indicates an enumeration index past the last entry.
	ErrNoMoreItems = &Error{Kind: ErrKindNotFound, Code: CodeNoMoreItems, Msg: "no more items"}
	// ErrEmptyPath indicates an empty component sequence after splitting.
	ErrEmptyPath = &Error{Kind: ErrKindPath, Msg: "empty path or missing component"}
	// ErrHostConflict indicates a remote host supplied both as an argument and
	// as a UNC prefix in the path string.
	ErrHostConflict = &Error{Kind: ErrKindPath, Msg: "remote host given using argument, but path already has remote host"}
	// ErrUnknownHive indicates a bare root name that is not a registered hive.
	ErrUnknownHive = &Error{Kind: ErrKindPath, Msg: "unknown hive"}
	// ErrUnknownType indicates a symbolic type name with no known tag.
	ErrUnknownType = &Error{Kind: ErrKindPath, Msg: "unknown type name"}
	// ErrInferType indicates a value whose type cannot be inferred.
	ErrInferType = &Error{Kind: ErrKindPath, Msg: "cannot infer value type"}
	// ErrExists indicates a create with exist_ok disabled on an existing key.
	ErrExists = &Error{Kind: ErrKindPrecondition, Code: CodeAlreadyExists, Msg: "key already exists"}
	// ErrNoParent indicates a create with parents disabled and a missing parent.
	ErrNoParent = &Error{Kind: ErrKindPrecondition, Msg: "parent key does not exist"}
	// ErrKeyNotEmpty indicates a non-recursive delete of a key with subkeys.
	ErrKeyNotEmpty = &Error{Kind: ErrKindState, Code: CodeAccessDenied, Msg: "key has subkeys"}
	// ErrInvalidHandle indicates an operation on a closed or unknown handle.
	ErrInvalidHandle = &Error{Kind: ErrKindState, Code: CodeInvalidHandle, Msg: "invalid or closed handle"}
	// ErrKeyDeleted indicates an operation on a handle whose key was deleted.
	ErrKeyDeleted = &Error{Kind: ErrKindState, Code: CodeKeyDeleted, Msg: "key has been deleted"}
)

// KindOf extracts the kind from err. The second return is false when err has
// no *Error in its chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotFound reports whether err means a missing key or value. Exists-style
// checks catch exactly this kind and propagate everything else.
func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == ErrKindNotFound
}
