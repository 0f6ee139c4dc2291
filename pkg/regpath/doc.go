// Package regpath provides hierarchical path objects over a registry-style
// tree store: hives, nested keys, and typed values, local or on a remote
// host.
//
// # Overview
//
// A Path identifies one node in the tree. Paths are canonical: resolving the
// same (host, components) pair twice yields the same *Path, enforced by a
// weak identity cache on the Registry, with the seven well-known hive roots
// pre-seeded as permanently open singletons. A Path materializes a live
// backend handle lazily, on the first operation that needs one, and releases
// it with Close.
//
// # Resolving paths
//
//	reg := regpath.New(backend)
//	p, err := reg.Resolve(`HKLM\Software\Vendor\App`)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	v, err := p.GetValue("InstallDir")
//
// Short hive aliases (HKLM, HKCU, ...) expand to the full names, so
// reg.Resolve("HKCU") and reg.Resolve("HKEY_CURRENT_USER") return the same
// singleton. A UNC-style prefix selects a remote host:
//
//	p, err := reg.Resolve(`\\server\HKLM\Software`)
//
// # Backends
//
// All tree access goes through the Backend interface. On Windows, System()
// returns the process-wide Registry bound to the live registry; pkg/memreg
// provides an in-memory implementation for tests and for portable tools.
//
// # Concurrency
//
// Registry resolution is safe for concurrent use. An individual Path is not:
// its handle field is ordinary mutable state, so share a Path across
// goroutines only with external synchronization.
package regpath
