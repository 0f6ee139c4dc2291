// Package winapi implements the regpath backend over the live Windows
// registry. Key navigation uses golang.org/x/sys/windows/registry; the calls
// that package does not export (raw typed writes, indexed value enumeration,
// flush, hive load/save, reflection control) go through advapi32 directly.
//
// The implementation is Windows-only; on other platforms the package
// contains no backend.
package winapi
