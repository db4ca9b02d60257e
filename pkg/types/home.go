package types

import "fmt"

// DefaultHomeName is the bookmark directory created under the user's home.
const DefaultHomeName = ".hop"

// HomeKind selects how a HomeType is resolved.
type HomeKind int

const (
	// HomeRelative joins Path under the user's home directory.
	HomeRelative HomeKind = iota
	// HomeAbsolute uses Path as given.
	HomeAbsolute
)

func (k HomeKind) String() string {
	switch k {
	case HomeRelative:
		return "relative"
	case HomeAbsolute:
		return "absolute"
	default:
		return fmt.Sprintf("HomeKind(%d)", int(k))
	}
}

// HomeType describes where the bookmark home lives. It is chosen once at
// startup and never changes afterwards.
type HomeType struct {
	Kind HomeKind
	Path string
}

// RelativeHome returns a HomeType rooted under the user's home directory.
func RelativeHome(name string) HomeType {
	return HomeType{Kind: HomeRelative, Path: name}
}

// AbsoluteHome returns a HomeType for an explicit directory.
func AbsoluteHome(path string) HomeType {
	return HomeType{Kind: HomeAbsolute, Path: path}
}

// DefaultHome is ~/.hop.
func DefaultHome() HomeType {
	return RelativeHome(DefaultHomeName)
}

func (h HomeType) String() string {
	return fmt.Sprintf("%s(%s)", h.Kind, h.Path)
}
