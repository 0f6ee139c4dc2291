package regpath

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"weak"

	"github.com/neko-neko-nyan/regpath/pkg/types"
)

// Separator joins path components, matching the native form.
const Separator = `\`

// Registry owns the backend, the hive singletons and the path identity
// cache. Construct one per backend with New; on Windows, System() returns
// the process-wide default over the live registry.
type Registry struct {
	backend Backend

	mu    sync.Mutex
	cache map[cacheKey]weak.Pointer[Path]

	// hives holds the pre-seeded root singletons, keyed by both full names
	// and short aliases. Immutable after New.
	hives map[string]*Path
}

// New builds a Registry over backend and seeds the seven hive root
// singletons with their predefined pseudo-handles, so local hive roots are
// open from the start.
func New(backend Backend) *Registry {
	r := &Registry{
		backend: backend,
		cache:   make(map[cacheKey]weak.Pointer[Path]),
		hives:   make(map[string]*Path, len(types.HiveKeys)+len(types.HiveAliases)),
	}
	for name, hk := range types.HiveKeys {
		r.hives[name] = &Path{
			reg:    r,
			parts:  []string{name},
			handle: Handle(hk),
		}
	}
	for alias, full := range types.HiveAliases {
		r.hives[alias] = r.hives[full]
	}
	return r
}

// Backend returns the backend this Registry resolves against.
func (r *Registry) Backend() Backend { return r.backend }

// Hive returns the root singleton for a full hive name or short alias.
func (r *Registry) Hive(name string) (*Path, bool) {
	p, ok := r.hives[name]
	return p, ok
}

// Resolve parses a separator-delimited path and returns its canonical Path.
// A leading double separator marks a remote host: `\\server\HKLM\Software`.
func (r *Registry) Resolve(path string) (*Path, error) {
	return r.ResolveRemote(path, "")
}

// ResolveRemote is Resolve with an explicit remote host. Supplying a host
// both here and as a UNC prefix in the path is an error. The empty host
// means local.
func (r *Registry) ResolveRemote(path, host string) (*Path, error) {
	parts := strings.Split(path, Separator)
	if len(parts) >= 3 && parts[0] == "" && parts[1] == "" {
		if host != "" {
			return nil, fmt.Errorf("%w: %q", types.ErrHostConflict, path)
		}
		host = `\\` + parts[2]
		parts = parts[3:]
	} else if parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %q", types.ErrEmptyPath, path)
	}
	return r.resolve(parts, host)
}

// ResolveParts returns the canonical Path for an explicit component
// sequence. The first component may be a hive alias.
func (r *Registry) ResolveParts(parts []string, host string) (*Path, error) {
	if len(parts) == 0 {
		return nil, types.ErrEmptyPath
	}
	return r.resolve(slices.Clone(parts), host)
}

// resolve owns parts and may modify it.
func (r *Registry) resolve(parts []string, host string) (*Path, error) {
	parts[0] = types.CanonicalHive(parts[0])

	if len(parts) == 1 && host == "" {
		p, ok := r.hives[parts[0]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", types.ErrUnknownHive, parts[0])
		}
		return p, nil
	}
	return r.cached(parts, host), nil
}
