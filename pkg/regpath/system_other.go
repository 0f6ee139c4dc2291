//go:build !windows

package regpath

import "errors"

// ErrNoSystemRegistry is returned by System on platforms without a live
// registry. Construct a Registry over pkg/memreg (or another Backend)
// instead.
var ErrNoSystemRegistry = errors.New("regpath: live registry is only available on windows")

// System returns the process-wide Registry bound to the live Windows
// registry. On other platforms it fails with ErrNoSystemRegistry.
func System() (*Registry, error) {
	return nil, ErrNoSystemRegistry
}
