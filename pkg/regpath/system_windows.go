//go:build windows

package regpath

import (
	"sync"

	"github.com/neko-neko-nyan/regpath/internal/winapi"
)

var (
	systemOnce sync.Once
	systemReg  *Registry
)

// System returns the process-wide Registry bound to the live Windows
// registry. The instance is built on first use.
func System() (*Registry, error) {
	systemOnce.Do(func() {
		systemReg = New(winapi.New())
	})
	return systemReg, nil
}
