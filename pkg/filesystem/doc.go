// Package filesystem provides filesystem implementations for hop.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used in production and an afero-backed one used
// by tests and anything that wants an in-memory home.
package filesystem
