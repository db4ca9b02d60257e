package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Link is the name of a bookmark. It is used as a single file name inside
// the bookmark home.
type Link string

// NewLink creates a Link from a name.
func NewLink(name string) Link {
	return Link(name)
}

func (l Link) String() string {
	return string(l)
}

// Validate checks that the link can be stored as a single path segment.
func (l Link) Validate() error {
	name := string(l)
	switch {
	case name == "":
		return fmt.Errorf("link name must not be empty")
	case name == "." || name == "..":
		return fmt.Errorf("link name %q is reserved", name)
	case strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/'):
		return fmt.Errorf("link name %q must not contain a path separator", name)
	}
	return nil
}

// LinkTarget is the directory a bookmark points at.
type LinkTarget string

func (t LinkTarget) String() string {
	return string(t)
}

// Path returns the target as a filesystem path.
func (t LinkTarget) Path() string {
	return filepath.FromSlash(string(t))
}

// LinkPair is one bookmark entry: a name and the directory it points at.
type LinkPair struct {
	Link   Link
	Target LinkTarget
}

// NewLinkPair creates a LinkPair from raw strings.
func NewLinkPair(link, target string) LinkPair {
	return LinkPair{
		Link:   Link(link),
		Target: LinkTarget(target),
	}
}

func (p LinkPair) String() string {
	return fmt.Sprintf("%s -> %s", p.Link, p.Target)
}

// SymLink is the full path of a bookmark symlink inside the bookmark home.
type SymLink string

// NewSymLink joins a link name onto the bookmark home. The name is validated
// first so a bookmark can never escape the home directory.
func NewSymLink(home string, link Link) (SymLink, error) {
	if err := link.Validate(); err != nil {
		return "", err
	}
	return SymLink(filepath.Join(home, string(link))), nil
}

func (s SymLink) String() string {
	return string(s)
}

// Path returns the symlink location as a filesystem path.
func (s SymLink) Path() string {
	return string(s)
}
