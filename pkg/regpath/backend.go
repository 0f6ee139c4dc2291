package regpath

import (
	"time"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Handle is an opaque reference to an open key, issued and released by a
// Backend. The predefined hive pseudo-handles (types.HKEY_*) are valid
// handles without an open call.
type Handle uintptr

// InvalidHandle is the zero Handle; a Path holding it is closed.
const InvalidHandle Handle = 0

// KeyStat carries the per-key counters a single info query returns.
type KeyStat struct {
	SubKeyCount int
	ValueCount  int
	ModTime     time.Time
}

// Backend is the system-call surface of the underlying tree store. The path
// core layers identity, lifecycle and typed value marshaling on top of it and
// treats everything behind it as opaque.
//
// Implementations report failures as *types.Error (or wraps of the package
// sentinels) so that "not found" is distinguishable from other failures and
// the platform error code is preserved.
type Backend interface {
	// Connect opens a connection to the named remote host, returning a handle
	// to the given hive root on that host.
	Connect(host string, root types.HKey) (Handle, error)

	// Open opens an existing sub-key path (components joined by the
	// separator) under h. Missing keys fail with a not-found error.
	Open(h Handle, path string, access types.Access) (Handle, error)

	// Create creates the sub-key path under h, creating intermediate keys as
	// needed, and opens it. Existing keys are opened, not failed.
	Create(h Handle, path string, access types.Access) (Handle, error)

	// Close releases a handle. Predefined root pseudo-handles are accepted
	// and ignored.
	Close(h Handle) error

	// DeleteKey deletes the named direct sub-key of h. The sub-key must have
	// no children of its own.
	DeleteKey(h Handle, name string) error

	// Stat returns the key's sub-key and value counts.
	Stat(h Handle) (KeyStat, error)

	// EnumKey returns the i-th sub-key name, 0-based, in backend enumeration
	// order. Indexes past the end fail with ErrNoMoreItems.
	EnumKey(h Handle, i int) (string, error)

	// EnumValue returns the i-th value entry, 0-based.
	EnumValue(h Handle, i int) (name string, data []byte, typ types.RegType, err error)

	// GetValue returns the named value's payload and tag. The empty name is
	// the default value.
	GetValue(h Handle, name string) ([]byte, types.RegType, error)

	// SetValue writes the named value.
	SetValue(h Handle, name string, typ types.RegType, data []byte) error

	// DeleteValue removes the named value; missing values fail not-found.
	DeleteValue(h Handle, name string) error

	// Flush forces pending writes for the key to backing storage.
	Flush(h Handle) error

	// LoadKey attaches the hive image in file as a sub-key of h named name.
	LoadKey(h Handle, name, file string) error

	// SaveKey writes the subtree under h as a hive image to file.
	SaveKey(h Handle, file string) error

	// QueryReflection reports whether registry reflection is disabled for the
	// key. On stores without a dual view this is always false.
	QueryReflection(h Handle) (disabled bool, err error)

	// SetReflection disables (true) or re-enables (false) reflection.
	SetReflection(h Handle, disable bool) error
}
