package types

import "io/fs"

// FS is the low-level filesystem port the OS-backed capabilities are built on.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// UserDirs locates the bookmark home.
type UserDirs interface {
	// HopHome returns the absolute bookmark home for the given HomeType,
	// creating it (and any missing parents) when it does not exist yet.
	HopHome(home HomeType) (string, error)
}

// Directories answers questions about directories on disk.
type Directories interface {
	// DirExists reports whether path exists and is a directory. I/O
	// failures other than "does not exist" are returned as errors.
	DirExists(path string) (bool, error)
}

// SymLinks manages the bookmark symlinks inside the bookmark home.
type SymLinks interface {
	// ReadDirLinks returns every symlink in dir as a LinkPair. Entries that
	// are not symlinks are skipped; unreadable symlinks fail the call.
	ReadDirLinks(dir string) ([]LinkPair, error)

	// LinkExists reports whether anything already exists at link.
	LinkExists(link SymLink) (bool, error)

	// WriteLink creates link pointing at target.
	WriteLink(link SymLink, target string) error

	// DeleteLink removes the symlink for pair from dir.
	DeleteLink(dir string, pair LinkPair) error
}

// StdIO is the console the program talks to.
type StdIO interface {
	// Println emits one line of text.
	Println(message string)

	// Readln blocks until one line of input is available and returns it
	// without the line terminator.
	Readln() (string, error)
}
