package regpath

import (
	"runtime"
	"strings"
	"weak"
)

// cacheKey identifies a distinct path: remote host (empty for local) plus the
// joined component sequence.
type cacheKey struct {
	host string
	path string
}

// cached returns the one live Path for (host, parts), creating and inserting
// it if the cache has no live entry. Entries are weak: the cache never keeps
// a Path alive, and a cleanup prunes the slot once the object is collected.
func (r *Registry) cached(parts []string, host string) *Path {
	key := cacheKey{host: host, path: strings.Join(parts, Separator)}

	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.cache[key]; ok {
		if p := wp.Value(); p != nil {
			return p
		}
	}

	p := &Path{reg: r, parts: parts, host: host}
	r.cache[key] = weak.Make(p)
	runtime.AddCleanup(p, r.prune, key)
	return p
}

// prune removes the entry for key unless it has been re-populated with a
// live object since the collected one was inserted.
func (r *Registry) prune(key cacheKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if wp, ok := r.cache[key]; ok && wp.Value() == nil {
		delete(r.cache, key)
	}
}

// cacheLen reports the number of cache slots, live or pending pruning.
// Used by tests.
func (r *Registry) cacheLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}
