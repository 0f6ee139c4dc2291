package regpath

import (
	"strings"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Path identifies one node in the tree: a normalized component sequence
// whose first element is a canonical hive name, an optional remote host, and
// a lazily opened backend handle. Paths are canonical objects — obtain them
// through Registry.Resolve and friends, never by hand.
type Path struct {
	reg    *Registry
	parts  []string
	host   string // `\\server` form for UNC-parsed paths, "" for local
	handle Handle
}

// Registry returns the Registry that owns this Path.
func (p *Path) Registry() *Registry { return p.reg }

// Name returns the last path component.
func (p *Path) Name() string { return p.parts[len(p.parts)-1] }

// HiveName returns the canonical name of the root hive.
func (p *Path) HiveName() string { return p.parts[0] }

// Hive returns the local root singleton for this path's hive. ok is false
// when the first component is not a registered hive name.
func (p *Path) Hive() (*Path, bool) {
	return p.reg.Hive(p.parts[0])
}

// HiveKey returns the predefined root key for this path's hive.
func (p *Path) HiveKey() (types.HKey, bool) {
	hk, ok := types.HiveKeys[p.parts[0]]
	return hk, ok
}

// Parts returns a copy of the component sequence.
func (p *Path) Parts() []string {
	out := make([]string, len(p.parts))
	copy(out, p.parts)
	return out
}

// RemoteHost returns the remote host identifier, or "" for a local path.
func (p *Path) RemoteHost() string { return p.host }

// IsRemote reports whether the path targets a remote host.
func (p *Path) IsRemote() bool { return p.host != "" }

// IsHive reports whether the path is a bare hive root.
func (p *Path) IsHive() bool { return len(p.parts) == 1 }

// IsOpen reports whether a live handle is held.
func (p *Path) IsOpen() bool { return p.handle != InvalidHandle }

// Handle returns the current backend handle, InvalidHandle when closed.
func (p *Path) Handle() Handle { return p.handle }

// Parent resolves the path one component up. Fails on a hive root, which has
// no parent.
func (p *Path) Parent() (*Path, error) {
	return p.reg.ResolveParts(p.parts[:len(p.parts)-1], p.host)
}

// Join resolves a child path. The child may itself contain separators:
// p.Join(`Vendor\App`) descends two levels.
func (p *Path) Join(child string) (*Path, error) {
	parts := make([]string, 0, len(p.parts)+1)
	parts = append(parts, p.parts...)
	parts = append(parts, strings.Split(child, Separator)...)
	return p.reg.ResolveParts(parts, p.host)
}

// subPath is the key path below the hive root, for backend calls.
func (p *Path) subPath() string {
	return strings.Join(p.parts[1:], Separator)
}

func (p *Path) String() string {
	if p.IsRemote() {
		return p.host + Separator + strings.Join(p.parts, Separator)
	}
	return strings.Join(p.parts, Separator)
}
