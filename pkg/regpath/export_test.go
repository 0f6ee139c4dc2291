package regpath

// CacheLen exposes the identity-cache size to the external test package.
func (r *Registry) CacheLen() int { return r.cacheLen() }
