// Package memreg is an in-memory implementation of the regpath backend
// surface: a registry-shaped tree of keys and typed values with a handle
// table, the seven predefined hive roots, UNC-style remote host linking, and
// CBOR hive images for bulk save/load.
//
// It mirrors the observable behavior of the live registry where the path
// core depends on it: key and value name lookup is case-insensitive,
// enumeration follows insertion order, non-empty keys refuse non-recursive
// deletion, and handles to deleted keys keep failing with a key-deleted
// error. Errors carry Windows-shaped codes so not-found stays
// distinguishable.
//
//	store := memreg.New()
//	reg := regpath.New(store)
//	p, _ := reg.Resolve(`HKCU\Software\Test`)
//
// memreg backs the test suites of pkg/regpath and serves regctl on
// platforms without a live registry.
package memreg
