// Package types defines the shared vocabulary of the regpath module: registry
// value type tags, access masks, the well-known root keys ("hives") with their
// short aliases, typed errors with stable kinds, and value type inference.
//
// It is a leaf package with no dependencies on the rest of the module so that
// backends, the path core, and user code can all share these definitions.
// Most users never import it directly: pkg/regpath re-exports the common
// names.
package types
