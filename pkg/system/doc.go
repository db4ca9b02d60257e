// Package system provides the OS-backed implementations of hop's
// capabilities: locating the bookmark home, checking directories, managing
// bookmark symlinks and talking to the console.
//
// Everything goes through a types.FS, so the same code runs against the
// real filesystem in production and against afero in tests.
package system
