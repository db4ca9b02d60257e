// Package hop implements the bookmark operations: list, tabulate, jump,
// mark and delete.
//
// The Program never touches the operating system directly. Everything it
// needs is reached through the capability interfaces in pkg/types, which
// the CLI satisfies with pkg/system and the tests satisfy with scripted
// fakes.
package hop
