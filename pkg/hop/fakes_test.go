package hop_test

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/types"
)

// fakeHome is a scripted bookmark world: a home directory, the directories
// that exist, the links inside the home and the lines the user will type.
type fakeHome struct {
	home    string
	homeErr error
	dirs    map[string]bool
	links   map[string]string

	dirErr    error
	existsErr error
	readErr   error
	writeErr  error
	deleteErr error

	input   []string
	output  []string
	calls   []string
	deleted []types.LinkPair
	written []string
}

func newFakeHome(home string) *fakeHome {
	return &fakeHome{
		home:  home,
		dirs:  map[string]bool{},
		links: map[string]string{},
	}
}

func (f *fakeHome) withDirs(paths ...string) *fakeHome {
	for _, p := range paths {
		f.dirs[p] = true
	}
	return f
}

func (f *fakeHome) withLink(name, target string) *fakeHome {
	f.links[name] = target
	return f
}

func (f *fakeHome) withInput(lines ...string) *fakeHome {
	f.input = append(f.input, lines...)
	return f
}

func (f *fakeHome) HopHome(home types.HomeType) (string, error) {
	f.calls = append(f.calls, "HopHome")
	if f.homeErr != nil {
		return "", f.homeErr
	}
	return f.home, nil
}

func (f *fakeHome) DirExists(path string) (bool, error) {
	f.calls = append(f.calls, "DirExists")
	if f.dirErr != nil {
		return false, f.dirErr
	}
	return f.dirs[path], nil
}

func (f *fakeHome) ReadDirLinks(dir string) ([]types.LinkPair, error) {
	f.calls = append(f.calls, "ReadDirLinks")
	if f.readErr != nil {
		return nil, f.readErr
	}
	names := make([]string, 0, len(f.links))
	for name := range f.links {
		names = append(names, name)
	}
	sort.Strings(names)

	var pairs []types.LinkPair
	for _, name := range names {
		pairs = append(pairs, types.NewLinkPair(name, f.links[name]))
	}
	return pairs, nil
}

func (f *fakeHome) LinkExists(link types.SymLink) (bool, error) {
	f.calls = append(f.calls, "LinkExists")
	if f.existsErr != nil {
		return false, f.existsErr
	}
	if filepath.Dir(link.Path()) != f.home {
		return false, nil
	}
	_, ok := f.links[filepath.Base(link.Path())]
	return ok, nil
}

func (f *fakeHome) WriteLink(link types.SymLink, target string) error {
	f.calls = append(f.calls, "WriteLink")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.links[filepath.Base(link.Path())] = target
	f.written = append(f.written, link.Path())
	return nil
}

func (f *fakeHome) DeleteLink(dir string, pair types.LinkPair) error {
	f.calls = append(f.calls, "DeleteLink")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.links, pair.Link.String())
	f.deleted = append(f.deleted, pair)
	return nil
}

func (f *fakeHome) Println(line string) {
	f.output = append(f.output, line)
}

func (f *fakeHome) Readln() (string, error) {
	if len(f.input) == 0 {
		return "", errors.New(errors.ErrInput, "Could not read stdin line")
	}
	line := f.input[0]
	f.input = f.input[1:]
	return line, nil
}
