package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/hop/pkg/types"
)

// osFS is the production filesystem: bookmark symlinks live on the real disk.
type osFS struct{}

var _ types.FS = osFS{}

// NewOS returns the filesystem system.New uses when no other is given. Every
// call goes straight to the os package, so symlinks are created, read and
// removed exactly as the shell's cd would later follow them.
func NewOS() types.FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Lstat does not follow the final symlink, which is how a bookmark is told
// apart from the directory it points at.
func (osFS) Lstat(name string) (fs.FileInfo, error) { return os.Lstat(name) }

func (osFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// Symlink creates the bookmark newname pointing at the directory oldname.
func (osFS) Symlink(oldname, newname string) error { return os.Symlink(oldname, newname) }

func (osFS) Readlink(name string) (string, error) { return os.Readlink(name) }

func (osFS) Remove(name string) error { return os.Remove(name) }
